// Package dataset provides the fixed list of people the reports run over.
package dataset

import (
	"time"

	"peoplereport/internal/person"
)

// Persons returns the six literal records in their canonical order.
// Each call returns a new slice.
func Persons() []person.Record {
	return []person.Record{
		person.New("Alisa", person.Date(2000, time.May, 15), "alisa@example.com"),
		person.New("Vlad", person.Date(2010, time.August, 22), "vlad@example.com"),
		person.New("Dima", person.Date(2020, time.February, 5), "dima@example.com"),
		person.New("Diana", person.Date(1955, time.August, 2), "diana@example.com"),
		person.New("Timur", person.Date(1999, time.April, 21), "rxz21@example.com"),
		person.New("Makar", person.Date(1975, time.December, 12), "Makar@example.com"),
	}
}
