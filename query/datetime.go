package query

import (
	"errors"
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// epochDate is the date given to values that only carry a time of day.
var epochDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// DatetimeParser parses cells with one strftime pattern.
//
// Values are tried, in order, as a full datetime, as a date at
// midnight, and as a time of day on 1970-01-01. Which forms are
// possible depends on the directives present in the pattern. Numeric
// fields such as %d, %m, %H and %M accept one or two digits.
type DatetimeParser struct {
	pattern string
	hasDate bool
	hasTime bool
}

// NewDatetimeParser checks a strftime pattern such as "%d/%m/%Y".
func NewDatetimeParser(pattern string) (*DatetimeParser, error) {
	// Only a value mismatch yields *time.ParseError, anything else is a bad pattern
	var pe *time.ParseError
	if _, err := strftime.Parse(pattern, ""); err != nil && !errors.As(err, &pe) {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrUnparseableDatetime, pattern, err)
	}
	hasDate, hasTime := scanDirectives(pattern)
	return &DatetimeParser{
		pattern: pattern,
		hasDate: hasDate,
		hasTime: hasTime,
	}, nil
}

// Pattern returns the strftime pattern the parser was built from
func (p *DatetimeParser) Pattern() string {
	return p.pattern
}

// Parse returns the instant value represents under the pattern.
func (p *DatetimeParser) Parse(value string) (time.Time, error) {
	if t, ok := p.parseDatetime(value); ok {
		return t, nil
	}
	if t, ok := p.parseDate(value); ok {
		return t, nil
	}
	if t, ok := p.parseTime(value); ok {
		return t, nil
	}
	return time.Time{}, &DatetimeError{Value: value, Pattern: p.pattern, Row: -1}
}

func (p *DatetimeParser) parseDatetime(value string) (time.Time, bool) {
	if !p.hasDate || !p.hasTime {
		return time.Time{}, false
	}
	return p.parse(value)
}

// parseDate relies on time.Parse defaulting the clock to midnight
func (p *DatetimeParser) parseDate(value string) (time.Time, bool) {
	if !p.hasDate || p.hasTime {
		return time.Time{}, false
	}
	return p.parse(value)
}

func (p *DatetimeParser) parseTime(value string) (time.Time, bool) {
	if p.hasDate || !p.hasTime {
		return time.Time{}, false
	}
	t, ok := p.parse(value)
	if !ok {
		return time.Time{}, false
	}
	return epochDate.Add(time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())), true
}

func (p *DatetimeParser) parse(value string) (time.Time, bool) {
	t, err := strftime.Parse(p.pattern, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// scanDirectives reports whether a strftime pattern carries date and
// time-of-day fields.
func scanDirectives(pattern string) (hasDate, hasTime bool) {
	for i := 0; i < len(pattern)-1; i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		// Skip flag characters such as %-d
		for i < len(pattern)-1 && (pattern[i] == '-' || pattern[i] == '_' || pattern[i] == '0' || pattern[i] == '^' || pattern[i] == '#') {
			i++
		}
		switch pattern[i] {
		case 'Y', 'y', 'C', 'G', 'g', 'm', 'b', 'B', 'h', 'd', 'e', 'j', 'a', 'A', 'u', 'w', 'U', 'W', 'V', 'F', 'D', 'x', 'v':
			hasDate = true
		case 'H', 'k', 'I', 'l', 'M', 'S', 'p', 'P', 'f', 'L', 'T', 'R', 'r', 'X', 'z', 'Z':
			hasTime = true
		case 'c', 's', '+':
			hasDate, hasTime = true, true
		}
	}
	return hasDate, hasTime
}
