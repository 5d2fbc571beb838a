package pipeline

import (
	"regexp"
	"strings"
)

// weekdayPattern matches English weekday names on word boundaries,
// so "Mondayish" does not count as Monday.
var weekdayPattern = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

// isoWeekdays maps lowercase weekday names to ISO-8601 weekday numbers.
var isoWeekdays = map[string]int{
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
	"sunday":    7,
}

// ExtractWeekday scans a day label for an English weekday name and returns
// its ISO weekday number (Monday=1 .. Sunday=7). The leftmost match wins.
// The second return is false when the label names no weekday.
func ExtractWeekday(dayLabel string) (int, bool) {
	m := weekdayPattern.FindStringSubmatch(dayLabel)
	if m == nil {
		return 0, false
	}
	return isoWeekdays[strings.ToLower(m[1])], true
}
