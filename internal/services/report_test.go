package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

func TestBuildCycleSummary(t *testing.T) {
	cycle := models.Cycle{
		UserID:          "user-1",
		StartDate:       mustParseDay("2024-03-01"),
		CycleLength:     28,
		PeriodStartDate: dayPtr("2024-03-01"),
		PeriodEndDate:   dayPtr("2024-03-05"),
		CurrentCycleDay: intPtr(9),
		Status:          models.CycleStatusActive,
	}

	summary := BuildCycleSummary(cycle, []models.Cycle{cycle})
	if summary.CycleLength != 28 {
		t.Fatalf("expected cycle length 28, got %d", summary.CycleLength)
	}
	if summary.PeriodDuration != 5 {
		t.Fatalf("expected period duration 5, got %d", summary.PeriodDuration)
	}
	if summary.EstimatedNextPeriod == nil || FormatDay(*summary.EstimatedNextPeriod) != "2024-03-29" {
		t.Fatalf("expected next period 2024-03-29, got %v", summary.EstimatedNextPeriod)
	}
	if summary.OvulationWindow == nil || FormatDay(summary.OvulationWindow.Start) != "2024-03-13" {
		t.Fatalf("expected ovulation window from 2024-03-13, got %#v", summary.OvulationWindow)
	}
	if summary.CurrentCycleDay == nil || *summary.CurrentCycleDay != 9 {
		t.Fatalf("expected current cycle day 9, got %v", summary.CurrentCycleDay)
	}
}

func TestBuildCycleSummaryWithoutPeriodDates(t *testing.T) {
	cycle := models.Cycle{StartDate: mustParseDay("2024-03-01"), CycleLength: 30}

	summary := BuildCycleSummary(cycle, nil)
	if summary.PeriodDuration != 0 {
		t.Fatalf("expected zero period duration, got %d", summary.PeriodDuration)
	}
	if summary.OvulationWindow != nil {
		t.Fatalf("expected nil ovulation window, got %#v", summary.OvulationWindow)
	}
	if summary.EstimatedNextPeriod != nil {
		t.Fatalf("expected nil estimate without history, got %v", summary.EstimatedNextPeriod)
	}
}

func TestBuildSymptomFrequency(t *testing.T) {
	if got := BuildSymptomFrequency(nil); got != (SymptomFrequencyReport{}) {
		t.Fatalf("expected zero frequencies, got %#v", got)
	}

	logs := []models.DailyLog{
		{PhysicalPainSymptoms: []string{"Cramps", "Headache"}, MoodMentalStates: []string{"Anxious"}},
		{PhysicalPainSymptoms: []string{"Cramps"}},
		{PhysicalPainSymptoms: []string{"Bloating"}, SexualHealthIndicators: []string{}},
		{PeriodIndicators: []string{"Spotting"}},
	}

	got := BuildSymptomFrequency(logs)
	want := SymptomFrequencyReport{PhysicalPain: 75, MoodMental: 25, DigestionAppetite: 25, SexualHealth: 0}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestBuildSymptomFrequencyRoundsPercentages(t *testing.T) {
	logs := []models.DailyLog{
		{SexualHealthIndicators: []string{"Protected sex"}},
		{SexualHealthIndicators: []string{"Protected sex"}},
		{},
	}

	if got := BuildSymptomFrequency(logs).SexualHealth; got != 67 {
		t.Fatalf("expected 67 percent, got %d", got)
	}
}

func TestBuildFlowPatternFiltersAndSorts(t *testing.T) {
	logs := []models.DailyLog{
		{Date: mustParseDay("2024-04-03"), FlowIntensity: intPtr(4)},
		{Date: mustParseDay("2024-04-01"), FlowIntensity: intPtr(7)},
		{Date: mustParseDay("2024-04-02"), FlowIntensity: intPtr(0)},
		{Date: mustParseDay("2024-04-04")},
	}

	pattern := BuildFlowPattern(logs)
	if len(pattern) != 2 {
		t.Fatalf("expected two flow points, got %#v", pattern)
	}
	if FormatDay(pattern[0].Date) != "2024-04-01" || pattern[0].Intensity != 7 {
		t.Fatalf("unexpected first flow point %#v", pattern[0])
	}
	if FormatDay(pattern[1].Date) != "2024-04-03" || pattern[1].Intensity != 4 {
		t.Fatalf("unexpected second flow point %#v", pattern[1])
	}
}

func TestBuildHistoricalLogs(t *testing.T) {
	many := make([]string, 12)
	for index := range many {
		many[index] = "symptom"
	}

	logs := []models.DailyLog{
		{Date: mustParseDay("2024-04-02"), MoodMentalStates: []string{"Calm"}, PeriodIndicators: []string{"Spotting"}, Notes: "slept badly"},
		{Date: mustParseDay("2024-04-01"), PhysicalPainSymptoms: many},
		{Date: mustParseDay("2024-04-03"), SexualHealthIndicators: []string{"High libido"}},
		{Date: mustParseDay("2024-04-04")},
		{Date: mustParseDay("2024-04-05"), PeriodIndicators: []string{"Heavy"}},
	}

	history := BuildHistoricalLogs(logs)
	want := []HistoricalLog{
		{Date: mustParseDay("2024-04-01"), TopSymptom: "Physical Pain", TotalSymptoms: "10/10"},
		{Date: mustParseDay("2024-04-02"), TopSymptom: "Mood & Mental", TotalSymptoms: "2/10", Note: "slept badly"},
		{Date: mustParseDay("2024-04-03"), TopSymptom: "Sexual Health", TotalSymptoms: "1/10"},
		{Date: mustParseDay("2024-04-04"), TopSymptom: "None", TotalSymptoms: "0/10"},
		{Date: mustParseDay("2024-04-05"), TopSymptom: "Period Indicators", TotalSymptoms: "1/10"},
	}
	if !reflect.DeepEqual(history, want) {
		t.Fatalf("unexpected historical logs:\n got %#v\nwant %#v", history, want)
	}
}

func TestBuildMonthlyReportWithoutCycle(t *testing.T) {
	report := BuildMonthlyReport(nil, nil, time.April, 2024)

	if report.Month != 4 || report.Year != 2024 {
		t.Fatalf("unexpected month/year %d/%d", report.Month, report.Year)
	}
	if report.CycleSummary != nil {
		t.Fatalf("expected nil cycle summary, got %#v", report.CycleSummary)
	}
	if report.Summary != "No cycle data available for this month." {
		t.Fatalf("unexpected summary %q", report.Summary)
	}
	if report.Tips == nil || len(report.Tips) != 0 {
		t.Fatalf("expected empty non-nil tips, got %#v", report.Tips)
	}
	if report.FlowPattern == nil || report.HistoricalLogs == nil {
		t.Fatal("expected empty non-nil flow pattern and history")
	}
}

func TestBuildMonthlyReportComposesSummaryAndTips(t *testing.T) {
	cycles := []models.Cycle{
		{ID: "older", StartDate: mustParseDay("2024-03-04"), CycleLength: 28, PeriodStartDate: dayPtr("2024-03-04"), Status: models.CycleStatusCompleted},
		{ID: "april", StartDate: mustParseDay("2024-04-01"), CycleLength: 30, PeriodStartDate: dayPtr("2024-04-01"), PeriodEndDate: dayPtr("2024-04-04"), Status: models.CycleStatusActive},
	}
	logs := []models.DailyLog{
		{Date: mustParseDay("2024-04-01"), MoodMentalStates: []string{"Irritable"}, FlowIntensity: intPtr(8)},
		{Date: mustParseDay("2024-04-02"), MoodMentalStates: []string{"Anxious"}, PhysicalPainSymptoms: []string{"Bloating"}, FlowIntensity: intPtr(5)},
		{Date: mustParseDay("2024-04-10")},
	}

	report := BuildMonthlyReport(cycles, logs, time.April, 2024)

	if report.CycleSummary == nil {
		t.Fatal("expected cycle summary for April cycle")
	}
	if report.CycleSummary.CycleLength != 30 || report.CycleSummary.PeriodDuration != 4 {
		t.Fatalf("unexpected cycle summary %#v", report.CycleSummary)
	}
	if report.CycleSummary.EstimatedNextPeriod == nil || FormatDay(*report.CycleSummary.EstimatedNextPeriod) != "2024-04-29" {
		t.Fatalf("expected next period 2024-04-29 (2024-04-01 + completed average 28), got %v", report.CycleSummary.EstimatedNextPeriod)
	}

	wantSummary := "Your average cycle length is 30 days. PMS symptoms were more frequent this month. Flow pattern remains within a typical range."
	if report.Summary != wantSummary {
		t.Fatalf("unexpected summary:\n got %q\nwant %q", report.Summary, wantSummary)
	}

	wantTips := []string{"Low sleep nights -> higher cramp scores", "Low hydration -> increased bloating"}
	if !reflect.DeepEqual(report.Tips, wantTips) {
		t.Fatalf("unexpected tips %#v", report.Tips)
	}

	if report.SymptomFrequency.MoodMental != 67 || report.SymptomFrequency.PhysicalPain != 33 {
		t.Fatalf("unexpected symptom frequency %#v", report.SymptomFrequency)
	}
	if len(report.FlowPattern) != 2 || len(report.HistoricalLogs) != 3 {
		t.Fatalf("unexpected flow pattern/history sizes %d/%d", len(report.FlowPattern), len(report.HistoricalLogs))
	}

	again := BuildMonthlyReport(cycles, logs, time.April, 2024)
	if !reflect.DeepEqual(report, again) {
		t.Fatal("expected identical report on repeated calls")
	}
}

func TestBuildMonthlyReportPMSWithinNormalRange(t *testing.T) {
	cycles := []models.Cycle{{StartDate: mustParseDay("2024-04-01")}}
	logs := []models.DailyLog{
		{Date: mustParseDay("2024-04-01"), MoodMentalStates: []string{"Calm"}},
		{Date: mustParseDay("2024-04-02")},
	}

	report := BuildMonthlyReport(cycles, logs, time.April, 2024)
	want := "Your average cycle length is 28 days. PMS symptoms were within normal range. Flow pattern remains within a typical range."
	if report.Summary != want {
		t.Fatalf("unexpected summary:\n got %q\nwant %q", report.Summary, want)
	}
}

func TestFindCycleStartingInMonthPrefersLatest(t *testing.T) {
	cycles := []models.Cycle{
		{ID: "early", StartDate: mustParseDay("2024-04-02")},
		{ID: "late", StartDate: mustParseDay("2024-04-28")},
		{ID: "may", StartDate: mustParseDay("2024-05-01")},
	}

	found := FindCycleStartingInMonth(cycles, time.April, 2024)
	if found == nil || found.ID != "late" {
		t.Fatalf("expected latest April cycle, got %#v", found)
	}
	if FindCycleStartingInMonth(cycles, time.June, 2024) != nil {
		t.Fatal("expected no cycle for June")
	}
}
