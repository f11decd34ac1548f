// Package person defines the immutable person record the reports run over.
// Ages are always computed against an explicit time so callers control "now".
package person

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// dateLayout is the civil date format used when rendering birth dates.
const dateLayout = "2006-01-02"

// Clock returns the current time. Reports read it once per age evaluation.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// Record is a person with a name, a birth date and a contact address.
// The zero value is valid but empty.
type Record struct {
	name      string
	birthDate time.Time
	contact   string
}

// New builds a Record. Nothing is validated: empty names, future birth dates and
// malformed addresses are all accepted. Only the calendar date of birthDate is kept.
func New(name string, birthDate time.Time, contact string) Record {
	return Record{
		name:      name,
		birthDate: Date(birthDate.Year(), birthDate.Month(), birthDate.Day()),
		contact:   contact,
	}
}

// Date returns the civil date y-m-d at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (r Record) Name() string         { return r.name }
func (r Record) BirthDate() time.Time { return r.birthDate }
func (r Record) Contact() string      { return r.contact }

// Age returns the whole years elapsed between the birth date and the calendar date
// of now. A birth date after now yields a negative age.
func (r Record) Age(now time.Time) int {
	today := Date(now.Year(), now.Month(), now.Day())
	if r.birthDate.After(today) {
		return -wholeYears(today, r.birthDate)
	}
	return wholeYears(r.birthDate, today)
}

// wholeYears counts complete years from start to end, with start <= end.
func wholeYears(start, end time.Time) int {
	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return years
}

// IsLeapYearBorn reports whether the birth year is a Gregorian leap year.
func (r Record) IsLeapYearBorn() bool {
	return IsLeapYear(r.birthDate.Year())
}

// IsLeapYear applies the proleptic Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (r Record) String() string {
	return fmt.Sprintf("Person{name=%s, birthDate=%s, contact=%s}",
		r.name, r.birthDate.Format(dateLayout), r.contact)
}

// MarshalLogObject renders the record as structured zap fields.
func (r Record) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", r.name)
	enc.AddString("birth_date", r.birthDate.Format(dateLayout))
	enc.AddString("contact", r.contact)
	return nil
}

// Records is an ordered collection that logs as a single zap array.
type Records []Record

// MarshalLogArray implements zapcore.ArrayMarshaler.
func (rs Records) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, r := range rs {
		if err := enc.AppendObject(r); err != nil {
			return err
		}
	}
	return nil
}
