package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/cyclesight/internal/models"
)

const (
	noCycleDataSummary = "No cycle data available for this month."
	bloatingSymptom    = "Bloating"
	highFlowIntensity  = 7
)

type reportContext struct {
	cycle *models.Cycle
	logs  []models.DailyLog
}

type textRule struct {
	applies func(reportContext) bool
	message func(reportContext) string
}

func always(reportContext) bool { return true }

func fixedMessage(text string) func(reportContext) string {
	return func(reportContext) string { return text }
}

var summaryRules = []textRule{
	{
		applies: always,
		message: func(context reportContext) string {
			length := context.cycle.CycleLength
			if length <= 0 {
				length = models.DefaultCycleLength
			}
			return fmt.Sprintf("Your average cycle length is %d days.", length)
		},
	},
	{
		applies: pmsSymptomsFrequent,
		message: fixedMessage("PMS symptoms were more frequent this month."),
	},
	{
		applies: func(context reportContext) bool { return !pmsSymptomsFrequent(context) },
		message: fixedMessage("PMS symptoms were within normal range."),
	},
	{
		applies: always,
		message: fixedMessage("Flow pattern remains within a typical range."),
	},
}

var tipRules = []textRule{
	{
		applies: func(context reportContext) bool {
			for _, entry := range context.logs {
				if entry.Intensity() > highFlowIntensity {
					return true
				}
			}
			return false
		},
		message: fixedMessage("Low sleep nights -> higher cramp scores"),
	},
	{
		applies: func(context reportContext) bool {
			for _, entry := range context.logs {
				for _, symptom := range entry.PhysicalPainSymptoms {
					if symptom == bloatingSymptom {
						return true
					}
				}
			}
			return false
		},
		message: fixedMessage("Low hydration -> increased bloating"),
	},
}

func buildSummaryText(context reportContext) string {
	if context.cycle == nil {
		return noCycleDataSummary
	}
	return strings.Join(applyRules(summaryRules, context), " ")
}

func buildTips(context reportContext) []string {
	return applyRules(tipRules, context)
}

func applyRules(rules []textRule, context reportContext) []string {
	messages := make([]string, 0, len(rules))
	for _, rule := range rules {
		if rule.applies(context) {
			messages = append(messages, rule.message(context))
		}
	}
	return messages
}

// pmsSymptomsFrequent reports whether more than half of the logs carry a
// mood or mental state.
func pmsSymptomsFrequent(context reportContext) bool {
	withMood := 0
	for _, entry := range context.logs {
		if len(entry.MoodMentalStates) > 0 {
			withMood++
		}
	}
	return float64(withMood) > float64(len(context.logs))*0.5
}
