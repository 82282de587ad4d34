package services

import (
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

type HighlightType string

const (
	HighlightPeriod  HighlightType = "period"
	HighlightFertile HighlightType = "fertile"
)

type HighlightedDate struct {
	Date time.Time     `json:"date"`
	Type HighlightType `json:"type"`
}

type CalendarData struct {
	Month            int               `json:"month"`
	Year             int               `json:"year"`
	HighlightedDates []HighlightedDate `json:"highlightedDates"`
}

// BuildCalendar projects each cycle's period and fertile window onto the
// month. Entries follow cycle order, then day order; overlapping cycles may
// contribute the same day more than once.
func BuildCalendar(cycles []models.Cycle, month time.Month, year int) CalendarData {
	monthStart, monthEnd := MonthBounds(month, year)
	calendar := CalendarData{
		Month:            int(month),
		Year:             year,
		HighlightedDates: make([]HighlightedDate, 0),
	}

	for _, cycle := range cycles {
		if cycle.PeriodStartDate == nil || cycle.PeriodEndDate == nil {
			continue
		}

		periodStart := DateOnly(*cycle.PeriodStartDate)
		periodEnd := DateOnly(*cycle.PeriodEndDate)
		if intervalsOverlap(periodStart, periodEnd, monthStart, monthEnd) {
			calendar.HighlightedDates = appendHighlights(calendar.HighlightedDates, periodStart, periodEnd, monthStart, monthEnd, HighlightPeriod)
		}

		if fertile := FertileWindow(cycle.PeriodStartDate); fertile != nil {
			if intervalsOverlap(fertile.Start, fertile.End, monthStart, monthEnd) {
				calendar.HighlightedDates = appendHighlights(calendar.HighlightedDates, fertile.Start, fertile.End, monthStart, monthEnd, HighlightFertile)
			}
		}
	}

	return calendar
}

func intervalsOverlap(start, end, rangeStart, rangeEnd time.Time) bool {
	return betweenInclusive(start, rangeStart, rangeEnd) ||
		betweenInclusive(end, rangeStart, rangeEnd) ||
		(!start.After(rangeStart) && !end.Before(rangeEnd))
}

func appendHighlights(highlights []HighlightedDate, start, end, rangeStart, rangeEnd time.Time, kind HighlightType) []HighlightedDate {
	from := maxDay(start, rangeStart)
	to := minDay(end, rangeEnd)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		highlights = append(highlights, HighlightedDate{Date: day, Type: kind})
	}
	return highlights
}
