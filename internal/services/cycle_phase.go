package services

import (
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

const defaultPeriodDays = 5

// PhaseOn places day inside the cycle anchored at the cycle's period start.
// It returns false when the cycle has no period start or day precedes it.
func PhaseOn(cycle models.Cycle, day time.Time) (models.CyclePhase, bool) {
	if cycle.PeriodStartDate == nil || cycle.PeriodStartDate.IsZero() {
		return "", false
	}
	periodStart := DateOnly(*cycle.PeriodStartDate)
	day = DateOnly(day)
	if day.Before(periodStart) {
		return "", false
	}

	periodEnd := AddDays(periodStart, defaultPeriodDays-1)
	if cycle.PeriodEndDate != nil && !cycle.PeriodEndDate.IsZero() && !cycle.PeriodEndDate.Before(periodStart) {
		periodEnd = DateOnly(*cycle.PeriodEndDate)
	}
	if !day.After(periodEnd) {
		return models.CyclePhaseMenstrual, true
	}

	ovulation := OvulationWindow(&periodStart)
	switch {
	case day.Before(ovulation.Start):
		return models.CyclePhaseFollicular, true
	case !day.After(ovulation.End):
		return models.CyclePhaseOvulation, true
	default:
		return models.CyclePhaseLuteal, true
	}
}
