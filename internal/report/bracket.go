package report

import (
	"go.uber.org/zap/zapcore"

	"peoplereport/internal/person"
)

// Bracket is an age classification derived at report time.
type Bracket int

const (
	Child      Bracket = iota // age < 18
	Youth                     // 18 <= age <= 40
	MiddleAged                // 41 <= age <= 65
	Elderly                   // age > 65
)

// AllBrackets lists brackets in rendering order.
var AllBrackets = []Bracket{Child, Youth, MiddleAged, Elderly}

func (b Bracket) String() string {
	switch b {
	case Child:
		return "Child"
	case Youth:
		return "Youth"
	case MiddleAged:
		return "Middle-aged"
	case Elderly:
		return "Elderly"
	default:
		return "Unknown"
	}
}

// BracketFor classifies an age. Note that 18 falls in Youth even though the
// adult filter requires age > 18; both thresholds are intentional.
func BracketFor(age int) Bracket {
	switch {
	case age < 18:
		return Child
	case age <= 40:
		return Youth
	case age <= 65:
		return MiddleAged
	default:
		return Elderly
	}
}

// Grouping partitions records by bracket. Brackets without members are absent.
type Grouping struct {
	members map[Bracket][]person.Record
}

// Brackets returns the non-empty brackets in rendering order.
func (g Grouping) Brackets() []Bracket {
	var out []Bracket
	for _, b := range AllBrackets {
		if len(g.members[b]) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Members returns the records in b, in dataset order.
func (g Grouping) Members(b Bracket) []person.Record {
	return g.members[b]
}

// Len returns the total number of grouped records.
func (g Grouping) Len() int {
	n := 0
	for _, rs := range g.members {
		n += len(rs)
	}
	return n
}

// MarshalLogObject logs the grouping as label -> records.
func (g Grouping) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, b := range g.Brackets() {
		if err := enc.AddArray(b.String(), person.Records(g.members[b])); err != nil {
			return err
		}
	}
	return nil
}
