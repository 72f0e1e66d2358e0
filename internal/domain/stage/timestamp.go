package stage

import (
	"regexp"
	"time"
)

// TimestampLayout is the only accepted wire and display form for stage dates.
const TimestampLayout = "2006-01-02T15:04:05Z"

// timestampPattern enforces the fixed-width shape before calendar checks.
// Fixed width is what makes lexical comparison of two timestamps valid.
var timestampPattern = regexp.MustCompile(`^[12]\d{3}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

// ParseTimestamp parses a strict YYYY-MM-DDTHH:MM:SSZ value. It rejects
// calendar-invalid dates such as 2024-02-30 and out-of-range clock values.
func ParseTimestamp(s string) (time.Time, bool) {
	if !timestampPattern.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
