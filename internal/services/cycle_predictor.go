package services

import (
	"math"
	"sort"
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

// SortCyclesByStartDesc returns a copy of cycles ordered most recent first.
// Cycles sharing a start date keep their relative input order.
func SortCyclesByStartDesc(cycles []models.Cycle) []models.Cycle {
	sorted := make([]models.Cycle, 0, len(cycles))
	sorted = append(sorted, cycles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DateOnly(sorted[i].StartDate).After(DateOnly(sorted[j].StartDate))
	})
	return sorted
}

func PredictNextPeriod(cycles []models.Cycle) *time.Time {
	if len(cycles) == 0 {
		return nil
	}
	sorted := SortCyclesByStartDesc(cycles)

	completedLengths := make([]int, 0, len(sorted))
	for _, cycle := range sorted {
		if cycle.IsCompleted() && cycle.CycleLength > 0 {
			completedLengths = append(completedLengths, cycle.CycleLength)
		}
	}

	if len(completedLengths) == 0 {
		latest := sorted[0]
		length := latest.CycleLength
		if length <= 0 {
			length = models.DefaultCycleLength
		}
		next := AddDays(periodAnchor(latest), length)
		return &next
	}

	averageLength := int(math.Round(averageInts(completedLengths)))
	anchor := sorted[0]
	for _, cycle := range sorted {
		if cycle.PeriodStartDate != nil {
			anchor = cycle
			break
		}
	}
	next := AddDays(periodAnchor(anchor), averageLength)
	return &next
}

func periodAnchor(cycle models.Cycle) time.Time {
	if cycle.PeriodStartDate != nil {
		return DateOnly(*cycle.PeriodStartDate)
	}
	return DateOnly(cycle.StartDate)
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}
