package shift

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedShift = errors.New("malformed shift")

// H[:MM] with an optional am/pm marker, e.g. "9", "9:30", "5:00 pm", "12am"
var boundPattern = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{1,2}))?\s*(am|pm)?$`)

type bound struct {
	hour   int
	minute int
	marker string // "", "am" or "pm"
}

// Window is a parsed shift range anchored on one calendar date.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies in the closed interval [Start, End].
// A window whose start is after its end contains nothing.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// IsOff reports whether spec marks the person as not working that day.
func IsOff(spec string) bool {
	return strings.EqualFold(strings.TrimSpace(spec), "off")
}

// ParseWindow parses a "start-end" shift-spec and anchors both bounds on the
// calendar date of day, in day's location.
//
// A bound carrying no am/pm marker borrows the marker of the other bound, so
// "9-5 pm" reads as 21:00-17:00. Schedules already stored rely on that reading.
func ParseWindow(spec string, day time.Time) (Window, error) {
	parts := strings.Split(strings.TrimSpace(spec), "-")
	if len(parts) != 2 {
		return Window{}, ErrMalformedShift
	}

	start, err := parseBound(parts[0])
	if err != nil {
		return Window{}, err
	}
	end, err := parseBound(parts[1])
	if err != nil {
		return Window{}, err
	}

	if start.marker == "" {
		start.marker = end.marker
	}
	if end.marker == "" {
		end.marker = start.marker
	}

	startHour, err := to24Hour(start)
	if err != nil {
		return Window{}, err
	}
	endHour, err := to24Hour(end)
	if err != nil {
		return Window{}, err
	}

	y, m, d := day.Date()
	loc := day.Location()
	return Window{
		Start: time.Date(y, m, d, startHour, start.minute, 0, 0, loc),
		End:   time.Date(y, m, d, endHour, end.minute, 0, 0, loc),
	}, nil
}

// ValidateSpec checks a shift-spec before it is written to a schedule.
func ValidateSpec(spec string) error {
	if IsOff(spec) {
		return nil
	}
	_, err := ParseWindow(spec, time.Time{})
	return err
}

func parseBound(s string) (bound, error) {
	match := boundPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return bound{}, ErrMalformedShift
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return bound{}, ErrMalformedShift
	}

	minute := 0
	if match[2] != "" {
		minute, err = strconv.Atoi(match[2])
		if err != nil {
			return bound{}, ErrMalformedShift
		}
	}
	if minute > 59 {
		return bound{}, ErrMalformedShift
	}

	return bound{
		hour:   hour,
		minute: minute,
		marker: strings.ToLower(match[3]),
	}, nil
}

func to24Hour(b bound) (int, error) {
	hour := b.hour
	switch {
	case b.marker == "pm" && hour >= 1 && hour <= 11:
		hour += 12
	case b.marker == "am" && hour == 12:
		hour = 0
	}
	if hour > 23 {
		return 0, ErrMalformedShift
	}
	return hour, nil
}
