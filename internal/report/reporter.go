package report

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"peoplereport/internal/person"
)

// Section headers printed before each report.
const (
	HeaderAdults   = "Отфильтрованные данные:(>18)"
	HeaderAverage  = "Средний возраст: "
	HeaderLeapYear = "Люди, родившиеся в високосный год:"
	HeaderGroups   = "Группировка людей по возрастным группам:"
)

// Reporter runs the four queries in sequence, printing each section to Out and
// logging it to Logger.
type Reporter struct {
	Out    io.Writer
	Logger *zap.Logger
	Clock  person.Clock
}

// Summary is what Run computed, for callers that want more than the printout.
type Summary struct {
	Adults     []Contact
	AverageAge float64
	LeapYear   person.Records
	Groups     Grouping
}

// Run reports over records. The first write error stops rendering and is returned;
// sections already printed stay printed.
func (r *Reporter) Run(records []person.Record) (Summary, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := r.Clock
	if clock == nil {
		clock = person.SystemClock
	}
	p := &printer{w: r.Out}
	var s Summary

	// Adults are logged while filtering and printed again afterwards.
	s.Adults = Adults(records, clock, func(rec person.Record) {
		logger.Info(rec.Name()+", "+rec.Contact(),
			zap.String("name", rec.Name()),
			zap.String("contact", rec.Contact()))
	})
	p.println(HeaderAdults)
	for _, c := range s.Adults {
		p.printf("Name: %s, Address: %s\n", c.Name, c.Address)
	}
	if p.err != nil {
		return s, p.err
	}

	s.AverageAge = AverageAge(records, clock)
	logger.Info("Average age", zap.Float64("average_age", s.AverageAge))
	p.println(HeaderAverage + formatFloat(s.AverageAge))
	if p.err != nil {
		return s, p.err
	}

	s.LeapYear = LeapYearBorn(records)
	logger.Info("People born in a leap year", zap.Array("persons", s.LeapYear))
	p.println(HeaderLeapYear)
	for _, rec := range s.LeapYear {
		p.printf("%s, %s\n", rec.Name(), rec.Contact())
	}
	if p.err != nil {
		return s, p.err
	}

	s.Groups = GroupByBracket(records, clock)
	logger.Info("People grouped by age bracket", zap.Object("groups", s.Groups))
	p.println(HeaderGroups)
	for _, b := range s.Groups.Brackets() {
		p.printf("%s:\n", b)
		for _, rec := range s.Groups.Members(b) {
			p.printf("  %s, %s\n", rec.Name(), rec.Contact())
		}
	}
	return s, p.err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// printer keeps the first write error and drops later writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("failed to write report: %w", err)
	}
}

func (p *printer) println(line string) {
	p.printf("%s\n", line)
}
