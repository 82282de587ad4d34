package services

import (
	"fmt"
	"math"
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

const (
	maxTotalSymptoms = 10
	noTopSymptom     = "None"
)

type CycleSummary struct {
	CycleLength         int        `json:"cycleLength"`
	PeriodDuration      int        `json:"periodDuration"`
	EstimatedNextPeriod *time.Time `json:"estimatedNextPeriod"`
	OvulationWindow     *Window    `json:"ovulationWindow"`
	CurrentCycleDay     *int       `json:"currentCycleDay"`
}

type SymptomFrequencyReport struct {
	PhysicalPain      int `json:"physicalPain"`
	MoodMental        int `json:"moodMental"`
	DigestionAppetite int `json:"digestionAppetite"`
	SexualHealth      int `json:"sexualHealth"`
}

type FlowPoint struct {
	Date      time.Time `json:"date"`
	Intensity int       `json:"intensity"`
}

type HistoricalLog struct {
	Date          time.Time `json:"date"`
	TopSymptom    string    `json:"topSymptom"`
	TotalSymptoms string    `json:"totalSymptoms"`
	Note          string    `json:"note"`
}

type MonthlyReport struct {
	Month            int                    `json:"month"`
	Year             int                    `json:"year"`
	CycleSummary     *CycleSummary          `json:"cycleSummary"`
	SymptomFrequency SymptomFrequencyReport `json:"symptomFrequency"`
	FlowPattern      []FlowPoint            `json:"flowPattern"`
	HistoricalLogs   []HistoricalLog        `json:"historicalLogs"`
	Summary          string                 `json:"summary"`
	Tips             []string               `json:"tips"`
}

// BuildCycleSummary summarizes cycle; history is the owning user's full
// cycle list and feeds the next-period estimate.
func BuildCycleSummary(cycle models.Cycle, history []models.Cycle) CycleSummary {
	periodDuration := 0
	if cycle.PeriodStartDate != nil && cycle.PeriodEndDate != nil {
		periodDuration = DaysBetween(*cycle.PeriodStartDate, *cycle.PeriodEndDate) + 1
	}

	return CycleSummary{
		CycleLength:         cycle.CycleLength,
		PeriodDuration:      periodDuration,
		EstimatedNextPeriod: PredictNextPeriod(history),
		OvulationWindow:     OvulationWindow(cycle.PeriodStartDate),
		CurrentCycleDay:     cycle.CurrentCycleDay,
	}
}

// BuildSymptomFrequency reports, per category, the share of logged days on
// which that category had at least one entry. Digestion/appetite has no
// field of its own and mirrors mood/mental.
func BuildSymptomFrequency(logs []models.DailyLog) SymptomFrequencyReport {
	totalDays := len(logs)
	if totalDays == 0 {
		return SymptomFrequencyReport{}
	}

	var physicalPainDays, moodMentalDays, sexualHealthDays int
	for _, entry := range logs {
		if len(entry.PhysicalPainSymptoms) > 0 {
			physicalPainDays++
		}
		if len(entry.MoodMentalStates) > 0 {
			moodMentalDays++
		}
		if len(entry.SexualHealthIndicators) > 0 {
			sexualHealthDays++
		}
	}

	moodMental := percentOf(moodMentalDays, totalDays)
	return SymptomFrequencyReport{
		PhysicalPain:      percentOf(physicalPainDays, totalDays),
		MoodMental:        moodMental,
		DigestionAppetite: moodMental,
		SexualHealth:      percentOf(sexualHealthDays, totalDays),
	}
}

func BuildFlowPattern(logs []models.DailyLog) []FlowPoint {
	pattern := make([]FlowPoint, 0, len(logs))
	for _, entry := range sortLogsByDateAsc(logs) {
		if intensity := entry.Intensity(); intensity > 0 {
			pattern = append(pattern, FlowPoint{Date: DateOnly(entry.Date), Intensity: intensity})
		}
	}
	return pattern
}

func BuildHistoricalLogs(logs []models.DailyLog) []HistoricalLog {
	history := make([]HistoricalLog, 0, len(logs))
	for _, entry := range sortLogsByDateAsc(logs) {
		history = append(history, HistoricalLog{
			Date:          DateOnly(entry.Date),
			TopSymptom:    topSymptomCategory(entry),
			TotalSymptoms: fmt.Sprintf("%d/%d", totalSymptoms(entry), maxTotalSymptoms),
			Note:          entry.Notes,
		})
	}
	return history
}

// FindCycleStartingInMonth returns the most recent cycle whose start date
// falls inside the month, or nil.
func FindCycleStartingInMonth(cycles []models.Cycle, month time.Month, year int) *models.Cycle {
	for _, cycle := range SortCyclesByStartDesc(cycles) {
		start := DateOnly(cycle.StartDate)
		if start.Month() == month && start.Year() == year {
			match := cycle
			return &match
		}
	}
	return nil
}

// BuildMonthlyReport composes the report for month/year from the user's full
// cycle history and the logs recorded inside that month.
func BuildMonthlyReport(cycles []models.Cycle, monthLogs []models.DailyLog, month time.Month, year int) MonthlyReport {
	cycle := FindCycleStartingInMonth(cycles, month, year)

	var summary *CycleSummary
	if cycle != nil {
		built := BuildCycleSummary(*cycle, cycles)
		summary = &built
	}

	context := reportContext{cycle: cycle, logs: monthLogs}
	return MonthlyReport{
		Month:            int(month),
		Year:             year,
		CycleSummary:     summary,
		SymptomFrequency: BuildSymptomFrequency(monthLogs),
		FlowPattern:      BuildFlowPattern(monthLogs),
		HistoricalLogs:   BuildHistoricalLogs(monthLogs),
		Summary:          buildSummaryText(context),
		Tips:             buildTips(context),
	}
}

func topSymptomCategory(entry models.DailyLog) string {
	switch {
	case len(entry.PhysicalPainSymptoms) > 0:
		return "Physical Pain"
	case len(entry.MoodMentalStates) > 0:
		return "Mood & Mental"
	case len(entry.PeriodIndicators) > 0:
		return "Period Indicators"
	case len(entry.SexualHealthIndicators) > 0:
		return "Sexual Health"
	default:
		return noTopSymptom
	}
}

func totalSymptoms(entry models.DailyLog) int {
	count := len(entry.PhysicalPainSymptoms) +
		len(entry.MoodMentalStates) +
		len(entry.PeriodIndicators) +
		len(entry.SexualHealthIndicators)
	if count > maxTotalSymptoms {
		return maxTotalSymptoms
	}
	return count
}

func percentOf(part int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
