package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownExpression is returned for relative expressions the parser does not understand.
var ErrUnknownExpression = errors.New("datemath: unknown relative expression")

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves relative day expressions ("tomorrow", "next week", "next friday")
// to the start of the matching day in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative expression to midnight of the target day, relative to base.
func (p *Parser) Parse(relative string, base time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(base), nil
	case "tomorrow":
		return p.StartOfDay(base.AddDate(0, 0, 1)), nil
	case "next week":
		return p.StartOfDay(base.AddDate(0, 0, 7)), nil
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(strings.TrimPrefix(relative, "next "), base)
	}

	return base, fmt.Errorf("%w: %q", ErrUnknownExpression, relative)
}

// parseNextWeekday returns the first strictly-later day with the given weekday name.
func (p *Parser) parseNextWeekday(dayName string, base time.Time) (time.Time, error) {
	target, ok := weekdays[dayName]
	if !ok {
		return base, fmt.Errorf("%w: unknown weekday %q", ErrUnknownExpression, dayName)
	}

	daysUntil := int(target - base.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's location.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At returns the given wall-clock time on day's date.
func (p *Parser) At(day time.Time, hour, minute int) time.Time {
	d := p.StartOfDay(day)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, p.location)
}
