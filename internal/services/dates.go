package services

import (
	"time"
)

const dateLayout = "2006-01-02"

const (
	fertileWindowStartOffset   = 7
	fertileWindowEndOffset     = 18
	ovulationWindowStartOffset = 12
	ovulationWindowEndOffset   = 14
)

type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start time.Time, end time.Time) DateRange {
	return DateRange{Start: DateOnly(start), End: DateOnly(end)}
}

// Empty reports whether the range is malformed (end before start).
func (r DateRange) Empty() bool {
	return DateOnly(r.End).Before(DateOnly(r.Start))
}

func (r DateRange) Contains(day time.Time) bool {
	if r.Empty() {
		return false
	}
	return betweenInclusive(DateOnly(day), DateOnly(r.Start), DateOnly(r.End))
}

// DateOnly keeps the calendar day of value and pins it to UTC midnight so
// day arithmetic is never affected by DST transitions.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return DateOnly(value.In(location))
}

func ParseDay(raw string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, raw, time.UTC)
}

func FormatDay(value time.Time) string {
	return DateOnly(value).Format(dateLayout)
}

func AddDays(day time.Time, n int) time.Time {
	return DateOnly(day).AddDate(0, 0, n)
}

// DaysBetween returns the whole number of calendar days from start to end.
func DaysBetween(start time.Time, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours() / 24)
}

func CycleDay(periodStart time.Time, current time.Time) int {
	day := DaysBetween(periodStart, current) + 1
	if day < 1 {
		return 1
	}
	return day
}

func FertileWindow(periodStart *time.Time) *Window {
	return offsetWindow(periodStart, fertileWindowStartOffset, fertileWindowEndOffset)
}

func OvulationWindow(periodStart *time.Time) *Window {
	return offsetWindow(periodStart, ovulationWindowStartOffset, ovulationWindowEndOffset)
}

func offsetWindow(anchor *time.Time, startOffset int, endOffset int) *Window {
	if anchor == nil || anchor.IsZero() {
		return nil
	}
	return &Window{
		Start: AddDays(*anchor, startOffset),
		End:   AddDays(*anchor, endOffset),
	}
}

func MonthBounds(month time.Month, year int) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

func betweenInclusive(day, start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

func maxDay(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDay(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
