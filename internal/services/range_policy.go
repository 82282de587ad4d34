package services

import (
	"errors"
	"strings"
)

var (
	ErrStartDateInvalid    = errors.New("invalid start date")
	ErrEndDateInvalid      = errors.New("invalid end date")
	ErrDateRangeIncomplete = errors.New("startDate and endDate must be provided together")
)

// ParseDateRange parses an optional YYYY-MM-DD pair. Both empty yields a nil
// range. An end before the start is not an error: the range is kept and
// simply matches nothing.
func ParseDateRange(rawStart string, rawEnd string) (*DateRange, error) {
	startRaw := strings.TrimSpace(rawStart)
	endRaw := strings.TrimSpace(rawEnd)

	if startRaw == "" && endRaw == "" {
		return nil, nil
	}
	if startRaw == "" || endRaw == "" {
		return nil, ErrDateRangeIncomplete
	}

	start, err := ParseDay(startRaw)
	if err != nil {
		return nil, ErrStartDateInvalid
	}
	end, err := ParseDay(endRaw)
	if err != nil {
		return nil, ErrEndDateInvalid
	}

	dateRange := NewDateRange(start, end)
	return &dateRange, nil
}
