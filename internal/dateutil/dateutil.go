// Package dateutil provides ISO week resolution and date format utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for date operations.
var (
	// ErrInvalidDateFormat indicates an invalid date format string.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidWeek indicates an ISO year/week pair outside the calendar.
	ErrInvalidWeek = errors.New("invalid ISO week")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDisplayFormat renders dates like "Feb 25, 2026" on meal cards.
const DefaultDisplayFormat = "MMM D, YYYY"

// Year bounds accepted for ISO week resolution.
const (
	MinYear = 1
	MaxYear = 9999
)

// DaysPerWeek is the number of entries in a resolved ISO week.
const DaysPerWeek = 7

// WeekDates holds the seven calendar dates of one ISO week.
// Index 0 is Monday, index 6 is Sunday.
type WeekDates [DaysPerWeek]time.Time

// Date returns the calendar date for an ISO weekday number (Monday=1 .. Sunday=7).
// Panics on out-of-range weekday; callers validate weekday extraction first.
func (w WeekDates) Date(weekday int) time.Time {
	if weekday < 1 || weekday > DaysPerWeek {
		panic(fmt.Sprintf("dateutil: weekday out of range: %d", weekday))
	}
	return w[weekday-1]
}

// ResolveWeek computes the seven dates of an ISO-8601 week.
// Week 1 is the week containing the year's first Thursday; equivalently,
// January 4 always falls in week 1. Returns ErrInvalidWeek when the year is
// outside [MinYear, MaxYear] or the week number does not exist in that year.
func ResolveWeek(year, week int) (WeekDates, error) {
	var dates WeekDates

	if year < MinYear || year > MaxYear {
		return dates, fmt.Errorf("%w: year %d out of range [%d, %d]", ErrInvalidWeek, year, MinYear, MaxYear)
	}
	if max := WeeksInYear(year); week < 1 || week > max {
		return dates, fmt.Errorf("%w: week %d out of range [1, %d] for year %d", ErrInvalidWeek, week, max, year)
	}

	// January 4 is always in ISO week 1; step back to that week's Monday.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))

	monday := week1Monday.AddDate(0, 0, (week-1)*7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates, nil
}

// WeeksInYear reports how many ISO weeks a year has: 53 when January 1 falls
// on a Thursday, or on a Wednesday in a leap year; 52 otherwise.
func WeeksInYear(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	switch jan1.Weekday() {
	case time.Thursday:
		return 53
	case time.Wednesday:
		if isLeapYear(year) {
			return 53
		}
	}
	return 52
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// formatSegment is one run of a parsed format string: either translated
// layout text for time.Format, or bracket-escaped literal text.
type formatSegment struct {
	text    string
	literal bool
}

// parseFormatSegments splits a format string into layout and literal runs.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has
// unclosed brackets.
func parseFormatSegments(format string) ([]formatSegment, error) {
	if format == "" {
		return nil, fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return nil, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var segments []formatSegment
	var layout strings.Builder

	flush := func() {
		if layout.Len() > 0 {
			segments = append(segments, formatSegment{text: layout.String()})
			layout.Reset()
		}
	}

	i := 0
	for i < len(format) {
		// Handle bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			flush()
			segments = append(segments, formatSegment{text: format[i+1 : i+1+end], literal: true})
			i += end + 2 // Skip past closing bracket
			continue
		}

		matched := false

		// Try to match tokens (longest first due to slice order)
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				layout.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			// Preserve literal character
			layout.WriteByte(format[i])
			i++
		}
	}

	flush()
	return segments, nil
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Week] preserves "Week" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
//
// The returned layout embeds bracket literals verbatim, so a literal that
// contains digits or Go layout letters is reinterpreted when the layout is
// passed to time.Format. FormatDate keeps such literals intact; prefer it
// over formatting with the returned layout directly.
func ParseDateFormat(format string) (string, error) {
	segments, err := parseFormatSegments(format)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	result.Grow(len(format) + 10)
	for _, seg := range segments {
		result.WriteString(seg.text)
	}
	return result.String(), nil
}

// FormatDate renders a date using the token syntax of ParseDateFormat.
// A format naming a preset (case-insensitive) uses that preset's tokens.
// Bracket-escaped literals come through verbatim, even when they contain
// digits or layout letters like [Week 1].
func FormatDate(t time.Time, format string) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	segments, err := parseFormatSegments(format)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	for _, seg := range segments {
		if seg.literal {
			result.WriteString(seg.text)
			continue
		}
		result.WriteString(t.Format(seg.text))
	}
	return result.String(), nil
}
