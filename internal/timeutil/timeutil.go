// Package timeutil parses and formats the wall-clock timestamps used
// throughout the booking system and provides the half-open interval
// arithmetic the availability checks are built on.  All times are local
// wall-clock; no timezone conversion is performed anywhere.
package timeutil

import (
	"regexp"
	"strings"
	"time"
)

// Layout is the only accepted timestamp format: four-digit year and
// zero-padded month, day, hour and minute.
const Layout = "2006-01-02 15:04"

// DateLayout is the date-only form used for the booking date.
const DateLayout = "2006-01-02"

// pattern enforces the exact digit widths before the value is handed to
// the time package, which would otherwise accept unpadded fields.
var pattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)

// Parse converts a "YYYY-MM-DD HH:MM" string to a local time.  The
// second return value is false when the input deviates from the pattern
// or names an impossible calendar date or time.
func Parse(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if !pattern.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders a time in the Layout form, zero-padded.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// FormatDate renders the date part only.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddMinutes returns t shifted forward by n minutes.
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// Overlaps reports whether the half-open intervals [start1, end1) and
// [start2, end2) share any instant.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}
