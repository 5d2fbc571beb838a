package meal2html

import (
	"time"

	"github.com/alnah/go-meal2html/internal/dateutil"
	"github.com/alnah/go-meal2html/internal/pipeline"
)

// WeekSpec selects an ISO-8601 week so day labels in the plan can be
// annotated with calendar dates.
type WeekSpec struct {
	Year int // ISO year
	Week int // ISO week number, 1-52 or 53 depending on the year
}

// Validate checks that the year and week name a real ISO week.
// Returns nil if w is nil (nil means no dates).
func (w *WeekSpec) Validate() error {
	if w == nil {
		return nil
	}
	if _, err := dateutil.ResolveWeek(w.Year, w.Week); err != nil {
		return wrapError(ErrInvalidISOWeek, err)
	}
	return nil
}

// WeeksInYear reports the number of ISO weeks in the given year, which is
// 52 or 53. Useful for validating week numbers before building a WeekSpec.
func WeeksInYear(year int) int {
	return dateutil.WeeksInYear(year)
}

// WeekDates returns the seven calendar dates of the given ISO week, Monday
// first. Returns ErrInvalidISOWeek when year and week name no real week.
func WeekDates(year, week int) ([7]time.Time, error) {
	dates, err := dateutil.ResolveWeek(year, week)
	if err != nil {
		return [7]time.Time{}, wrapError(ErrInvalidISOWeek, err)
	}
	return [7]time.Time(dates), nil
}

// ExtractWeekday scans a day label for an English weekday name and returns
// its ISO weekday number (Monday=1 .. Sunday=7). The leftmost match wins.
// The second return is false when the label names no weekday.
func ExtractWeekday(label string) (int, bool) {
	return pipeline.ExtractWeekday(label)
}
