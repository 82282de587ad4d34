package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
	"github.com/terraincognita07/cyclesight/internal/services"
)

var errInvalidCycleStatus = errors.New("status must be active or completed")

type cycleInput struct {
	UserID          string  `json:"userId"`
	StartDate       string  `json:"startDate"`
	EndDate         *string `json:"endDate"`
	CycleLength     int     `json:"cycleLength"`
	PeriodStartDate *string `json:"periodStartDate"`
	PeriodEndDate   *string `json:"periodEndDate"`
}

type cycleUpdateInput struct {
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	CycleLength     *int    `json:"cycleLength"`
	PeriodStartDate *string `json:"periodStartDate"`
	PeriodEndDate   *string `json:"periodEndDate"`
	Status          *string `json:"status"`
}

type dailyLogInput struct {
	UserID                 string   `json:"userId"`
	Date                   string   `json:"date"`
	CycleDay               *int     `json:"cycleDay"`
	PhysicalPainSymptoms   []string `json:"physicalPainSymptoms"`
	MoodMentalStates       []string `json:"moodMentalStates"`
	FlowIntensity          *int     `json:"flowIntensity"`
	PeriodIndicators       []string `json:"periodIndicators"`
	SexualHealthIndicators []string `json:"sexualHealthIndicators"`
	Notes                  string   `json:"notes"`
}

type dailyLogUpdateInput struct {
	Date                   *string  `json:"date"`
	CycleDay               *int     `json:"cycleDay"`
	PhysicalPainSymptoms   []string `json:"physicalPainSymptoms"`
	MoodMentalStates       []string `json:"moodMentalStates"`
	FlowIntensity          *int     `json:"flowIntensity"`
	PeriodIndicators       []string `json:"periodIndicators"`
	SexualHealthIndicators []string `json:"sexualHealthIndicators"`
	Notes                  *string  `json:"notes"`
}

func (input cycleInput) toModel() (models.Cycle, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return models.Cycle{}, services.ErrUserIDRequired
	}
	startDate, err := parseDayField("startDate", input.StartDate)
	if err != nil {
		return models.Cycle{}, err
	}

	cycle := models.Cycle{
		UserID:      userID,
		StartDate:   startDate,
		CycleLength: input.CycleLength,
	}
	if cycle.EndDate, err = parseOptionalDayField("endDate", input.EndDate); err != nil {
		return models.Cycle{}, err
	}
	if cycle.PeriodStartDate, err = parseOptionalDayField("periodStartDate", input.PeriodStartDate); err != nil {
		return models.Cycle{}, err
	}
	if cycle.PeriodEndDate, err = parseOptionalDayField("periodEndDate", input.PeriodEndDate); err != nil {
		return models.Cycle{}, err
	}
	return cycle, nil
}

func (input cycleUpdateInput) toUpdate() (services.CycleUpdate, error) {
	update := services.CycleUpdate{CycleLength: input.CycleLength}

	var err error
	if update.StartDate, err = parseOptionalDayField("startDate", input.StartDate); err != nil {
		return services.CycleUpdate{}, err
	}
	if update.EndDate, err = parseOptionalDayField("endDate", input.EndDate); err != nil {
		return services.CycleUpdate{}, err
	}
	if update.PeriodStartDate, err = parseOptionalDayField("periodStartDate", input.PeriodStartDate); err != nil {
		return services.CycleUpdate{}, err
	}
	if update.PeriodEndDate, err = parseOptionalDayField("periodEndDate", input.PeriodEndDate); err != nil {
		return services.CycleUpdate{}, err
	}

	if input.Status != nil {
		status := models.CycleStatus(strings.ToLower(strings.TrimSpace(*input.Status)))
		if status != models.CycleStatusActive && status != models.CycleStatusCompleted {
			return services.CycleUpdate{}, errInvalidCycleStatus
		}
		update.Status = &status
	}
	return update, nil
}

func (input dailyLogInput) toModel() (models.DailyLog, error) {
	entry := models.DailyLog{
		UserID:                 input.UserID,
		CycleDay:               input.CycleDay,
		PhysicalPainSymptoms:   input.PhysicalPainSymptoms,
		MoodMentalStates:       input.MoodMentalStates,
		FlowIntensity:          input.FlowIntensity,
		PeriodIndicators:       input.PeriodIndicators,
		SexualHealthIndicators: input.SexualHealthIndicators,
		Notes:                  strings.TrimSpace(input.Notes),
	}
	if strings.TrimSpace(input.Date) == "" {
		return entry, services.ErrDateRequired
	}
	date, err := parseDayField("date", input.Date)
	if err != nil {
		return entry, err
	}
	entry.Date = date
	return entry, nil
}

func (input dailyLogUpdateInput) toUpdate() (services.DailyLogUpdate, error) {
	date, err := parseOptionalDayField("date", input.Date)
	if err != nil {
		return services.DailyLogUpdate{}, err
	}
	return services.DailyLogUpdate{
		Date:                   date,
		CycleDay:               input.CycleDay,
		PhysicalPainSymptoms:   input.PhysicalPainSymptoms,
		MoodMentalStates:       input.MoodMentalStates,
		FlowIntensity:          input.FlowIntensity,
		PeriodIndicators:       input.PeriodIndicators,
		SexualHealthIndicators: input.SexualHealthIndicators,
		Notes:                  input.Notes,
	}, nil
}

type tipInput struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Category   string  `json:"category"`
	CycleDay   *int    `json:"cycleDay"`
	CyclePhase *string `json:"cyclePhase"`
}

type tipUpdateInput struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Category   *string `json:"category"`
	CycleDay   *int    `json:"cycleDay"`
	CyclePhase *string `json:"cyclePhase"`
}

func (input tipInput) toModel() models.Tip {
	return models.Tip{
		Title:      input.Title,
		Content:    input.Content,
		Category:   input.Category,
		CycleDay:   input.CycleDay,
		CyclePhase: parseCyclePhase(input.CyclePhase),
	}
}

func (input tipUpdateInput) toUpdate() services.TipUpdate {
	return services.TipUpdate{
		Title:      input.Title,
		Content:    input.Content,
		Category:   input.Category,
		CycleDay:   input.CycleDay,
		CyclePhase: parseCyclePhase(input.CyclePhase),
	}
}

// parseCyclePhase only normalizes; the tip service rejects unknown phases.
func parseCyclePhase(raw *string) *models.CyclePhase {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	phase := models.CyclePhase(strings.ToLower(strings.TrimSpace(*raw)))
	return &phase
}

func parseDayField(field string, raw string) (time.Time, error) {
	parsed, err := services.ParseDay(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: expected YYYY-MM-DD", field)
	}
	return parsed, nil
}

func parseOptionalDayField(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := parseDayField(field, *raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
