package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/cyclesight/internal/models"
)

const MaxDailyLogNotesLength = 2000

var (
	ErrInvalidFlowIntensity = errors.New("flow intensity must be between 0 and 10")
	ErrUserIDRequired       = errors.New("userId is required")
	ErrDateRequired         = errors.New("date is required")
)

// NormalizeDailyLog checks the entry's required fields and flow intensity,
// pins its date to a calendar day and replaces nil symptom lists with empty
// ones.
func NormalizeDailyLog(entry *models.DailyLog) error {
	entry.UserID = strings.TrimSpace(entry.UserID)
	if entry.UserID == "" {
		return ErrUserIDRequired
	}
	if entry.Date.IsZero() {
		return ErrDateRequired
	}
	if !IsValidFlowIntensity(entry.FlowIntensity) {
		return ErrInvalidFlowIntensity
	}

	entry.Date = DateOnly(entry.Date)
	entry.PhysicalPainSymptoms = nonNilStrings(entry.PhysicalPainSymptoms)
	entry.MoodMentalStates = nonNilStrings(entry.MoodMentalStates)
	entry.PeriodIndicators = nonNilStrings(entry.PeriodIndicators)
	entry.SexualHealthIndicators = nonNilStrings(entry.SexualHealthIndicators)
	entry.Notes = TrimDailyLogNotes(entry.Notes)
	return nil
}

func IsValidFlowIntensity(intensity *int) bool {
	if intensity == nil {
		return true
	}
	return *intensity >= models.MinFlowIntensity && *intensity <= models.MaxFlowIntensity
}

// TrimDailyLogNotes caps value at MaxDailyLogNotesLength characters, always
// cutting on a rune boundary.
func TrimDailyLogNotes(value string) string {
	if utf8.RuneCountInString(value) <= MaxDailyLogNotesLength {
		return value
	}

	runes := 0
	for index := range value {
		if runes == MaxDailyLogNotesLength {
			return value[:index]
		}
		runes++
	}
	return value
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
