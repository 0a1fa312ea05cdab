// Package model holds the domain entities, the typed request schemas bound
// from HTTP input, and the response views returned to clients.
package model

import (
	"errors"
	"strings"
	"time"
)

// DisplayDateLayout renders dates as "Sun Jan 15 2023".
const DisplayDateLayout = "Mon Jan 02 2006"

const dateOnlyLayout = "2006-01-02"

// endOfDay is added to a date-only upper bound so that "to=2023-01-15"
// covers the whole day. Microsecond precision matches postgres timestamptz.
const endOfDay = 24*time.Hour - time.Microsecond

var ErrInvalidDate = errors.New("must be a date in YYYY-MM-DD or RFC 3339 format")

// FormatDate renders t in UTC using DisplayDateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}

// ParseDate accepts "YYYY-MM-DD" (midnight UTC) or RFC 3339. dateOnly is
// true for the first form.
func ParseDate(value string) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)

	if parsed, err := time.Parse(dateOnlyLayout, value); err == nil {
		return parsed.UTC(), true, nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed.UTC(), false, nil
	}

	return time.Time{}, false, ErrInvalidDate
}

// parseLowerBound parses an inclusive "from" bound.
func parseLowerBound(value string) (time.Time, error) {
	t, _, err := ParseDate(value)
	return t, err
}

// parseUpperBound parses an inclusive "to" bound. A date-only value
// extends to the last microsecond of that day.
func parseUpperBound(value string) (time.Time, error) {
	t, dateOnly, err := ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	if dateOnly {
		t = t.Add(endOfDay)
	}
	return t, nil
}
