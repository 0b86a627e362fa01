// Package timeexpr resolves human-readable time expressions such as
// "tomorrow", "+1 hour" or "next friday" against a reference time.
package timeexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseable is returned when an expression cannot be resolved.
var ErrUnparseable = errors.New("unparseable time expression")

// absoluteLayouts are tried against the whole expression before any
// relative parsing happens.
var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// unit is either a fixed number of seconds or a calendar step. Calendar
// steps go through AddDate so months and years keep their day of month.
type unit struct {
	secs   int64
	months int
	days   int
}

var units = map[string]unit{
	"sec":       {secs: 1},
	"secs":      {secs: 1},
	"second":    {secs: 1},
	"seconds":   {secs: 1},
	"min":       {secs: 60},
	"mins":      {secs: 60},
	"minute":    {secs: 60},
	"minutes":   {secs: 60},
	"hour":      {secs: 3600},
	"hours":     {secs: 3600},
	"day":       {days: 1},
	"days":      {days: 1},
	"week":      {days: 7},
	"weeks":     {days: 7},
	"fortnight": {days: 14},
	"month":     {months: 1},
	"months":    {months: 1},
	"year":      {months: 12},
	"years":     {months: 12},
}

// Results must fall in years 1 through 9999. Any single offset larger than
// the whole span cannot land inside it, which also keeps the arithmetic
// below clear of integer overflow.
var (
	minUnix = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxUnix = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

const (
	maxSpanSeconds   = 10000 * 366 * 24 * 3600
	maxCalendarSteps = 10000 * 366
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// Parse resolves expr relative to now. Relative terms may be chained
// ("tomorrow +2 hours", "+1 week 2 days"); absolute dates are interpreted
// in now's location.
func Parse(expr string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(expr)
	s := strings.ToLower(trimmed)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty expression", ErrUnparseable)
	}

	if strings.HasPrefix(s, "@") {
		sec, err := strconv.ParseInt(s[1:], 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, expr)
		}
		if sec < minUnix || sec > maxUnix {
			return time.Time{}, fmt.Errorf("%w: %q is out of range", ErrUnparseable, expr)
		}
		return time.Unix(sec, 0).In(now.Location()), nil
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return t, nil
		}
	}

	t := now
	tokens := strings.Fields(s)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok {
		case "now":
		case "today", "midnight":
			t = midnight(t)
		case "noon":
			t = midnight(t).Add(12 * time.Hour)
		case "tomorrow":
			t = midnight(t).AddDate(0, 0, 1)
		case "yesterday":
			t = midnight(t).AddDate(0, 0, -1)
		case "next", "last", "previous", "this":
			if i+1 >= len(tokens) {
				return time.Time{}, fmt.Errorf("%w: %q needs a unit or weekday", ErrUnparseable, tok)
			}
			i++
			target := tokens[i]
			if wd, ok := weekdays[target]; ok {
				t = shiftWeekday(t, wd, tok)
				continue
			}
			u, ok := units[target]
			if !ok {
				return time.Time{}, fmt.Errorf("%w: unknown unit %q", ErrUnparseable, target)
			}
			var err error
			switch tok {
			case "next":
				t, err = u.apply(t, 1)
			case "last", "previous":
				t, err = u.apply(t, -1)
			}
			if err != nil {
				return time.Time{}, err
			}
		default:
			if wd, ok := weekdays[tok]; ok {
				t = shiftWeekday(t, wd, "this")
				continue
			}
			n, name, err := splitCount(tok)
			if err != nil {
				return time.Time{}, err
			}
			if name == "" {
				if i+1 >= len(tokens) {
					return time.Time{}, fmt.Errorf("%w: %q needs a unit", ErrUnparseable, tok)
				}
				i++
				name = tokens[i]
			}
			u, ok := units[name]
			if !ok {
				return time.Time{}, fmt.Errorf("%w: unknown unit %q", ErrUnparseable, name)
			}
			if i+1 < len(tokens) && tokens[i+1] == "ago" {
				n = -n
				i++
			}
			if t, err = u.apply(t, n); err != nil {
				return time.Time{}, err
			}
		}
	}
	if u := t.Unix(); u < minUnix || u > maxUnix {
		return time.Time{}, fmt.Errorf("%w: %q is out of range", ErrUnparseable, expr)
	}
	return t, nil
}

// Unix is Parse returning seconds since the epoch.
func Unix(expr string, now time.Time) (int64, error) {
	t, err := Parse(expr, now)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// splitCount reads a signed count from tok. The unit may follow without a
// space ("+1hour"), in which case it is returned as name.
func splitCount(tok string) (n int, name string, err error) {
	end := 0
	if end < len(tok) && (tok[end] == '+' || tok[end] == '-') {
		end++
	}
	digits := end
	for end < len(tok) && tok[end] >= '0' && tok[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, "", fmt.Errorf("%w: unexpected %q", ErrUnparseable, tok)
	}

	n, err = strconv.Atoi(tok[:end])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q is out of range", ErrUnparseable, tok)
	}
	return n, tok[end:], nil
}

func (u unit) apply(t time.Time, n int) (time.Time, error) {
	if u.secs != 0 {
		limit := int64(maxSpanSeconds) / u.secs
		if int64(n) > limit || int64(n) < -limit {
			return time.Time{}, fmt.Errorf("%w: offset of %d out of range", ErrUnparseable, n)
		}
		sec := t.Unix() + int64(n)*u.secs
		t = time.Unix(sec, int64(t.Nanosecond())).In(t.Location())
	} else {
		if n > maxCalendarSteps || n < -maxCalendarSteps {
			return time.Time{}, fmt.Errorf("%w: offset of %d out of range", ErrUnparseable, n)
		}
		t = t.AddDate(0, u.months*n, u.days*n)
	}

	if sec := t.Unix(); sec < minUnix || sec > maxUnix {
		return time.Time{}, fmt.Errorf("%w: offset of %d out of range", ErrUnparseable, n)
	}
	return t, nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// shiftWeekday moves to midnight of the requested weekday. "this" keeps
// today when it already matches, "next" always moves forward and "last"
// always moves back.
func shiftWeekday(t time.Time, wd time.Weekday, mode string) time.Time {
	day := midnight(t)
	diff := int(wd - day.Weekday())
	switch mode {
	case "last", "previous":
		if diff >= 0 {
			diff -= 7
		}
	case "next":
		if diff <= 0 {
			diff += 7
		}
	default:
		if diff < 0 {
			diff += 7
		}
	}
	return day.AddDate(0, 0, diff)
}
