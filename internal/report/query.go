// Package report runs the read-only queries over the person dataset and renders
// them to the console and the logger.
package report

import (
	"peoplereport/internal/person"
)

// AdultAge is the age a record must exceed to count as an adult.
const AdultAge = 18

// Contact is a name and address pair.
type Contact struct {
	Name    string
	Address string
}

// Adults returns the contacts of records older than AdultAge, in order.
// onMatch, when non-nil, is called for each match while filtering.
func Adults(records []person.Record, clock person.Clock, onMatch func(person.Record)) []Contact {
	var out []Contact
	for _, r := range records {
		if r.Age(clock()) <= AdultAge {
			continue
		}
		if onMatch != nil {
			onMatch(r)
		}
		out = append(out, Contact{Name: r.Name(), Address: r.Contact()})
	}
	return out
}

// AverageAge is the mean age over all records, or 0 for none.
func AverageAge(records []person.Record, clock person.Clock) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += r.Age(clock())
	}
	return float64(sum) / float64(len(records))
}

// LeapYearBorn returns the records born in a leap year, in order.
func LeapYearBorn(records []person.Record) person.Records {
	var out person.Records
	for _, r := range records {
		if r.IsLeapYearBorn() {
			out = append(out, r)
		}
	}
	return out
}

// GroupByBracket partitions all records by age bracket.
func GroupByBracket(records []person.Record, clock person.Clock) Grouping {
	g := Grouping{members: make(map[Bracket][]person.Record)}
	for _, r := range records {
		b := BracketFor(r.Age(clock()))
		g.members[b] = append(g.members[b], r)
	}
	return g
}
