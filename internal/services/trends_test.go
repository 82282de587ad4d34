package services

import (
	"reflect"
	"testing"

	"github.com/terraincognita07/cyclesight/internal/models"
)

func TestComputeTrendsEmpty(t *testing.T) {
	report := ComputeTrends(nil)

	if report.MostFrequentSymptom != nil {
		t.Fatalf("expected no most frequent symptom, got %q", *report.MostFrequentSymptom)
	}
	if report.SymptomIntensityChange != IntensityStable {
		t.Fatalf("expected stable trend, got %s", report.SymptomIntensityChange)
	}
	maps := []map[string]int{
		report.PhysicalPainFrequency,
		report.MoodMentalFrequency,
		report.PeriodIndicatorFrequency,
		report.SexualHealthFrequency,
	}
	for index, frequency := range maps {
		if frequency == nil || len(frequency) != 0 {
			t.Fatalf("expected empty non-nil frequency map at %d, got %#v", index, frequency)
		}
	}
}

func TestComputeTrendsCountsEachCategory(t *testing.T) {
	logs := []models.DailyLog{
		{
			Date:                   mustParseDay("2024-05-01"),
			PhysicalPainSymptoms:   []string{"Cramps", "Bloating"},
			MoodMentalStates:       []string{"Anxious"},
			PeriodIndicators:       []string{"Spotting"},
			SexualHealthIndicators: []string{"High libido"},
		},
		{
			Date:                 mustParseDay("2024-05-02"),
			PhysicalPainSymptoms: []string{"Cramps"},
			MoodMentalStates:     []string{"Anxious", "Calm"},
		},
	}

	report := ComputeTrends(logs)

	if want := map[string]int{"Cramps": 2, "Bloating": 1}; !reflect.DeepEqual(report.PhysicalPainFrequency, want) {
		t.Fatalf("unexpected physical pain frequency %#v", report.PhysicalPainFrequency)
	}
	if want := map[string]int{"Anxious": 2, "Calm": 1}; !reflect.DeepEqual(report.MoodMentalFrequency, want) {
		t.Fatalf("unexpected mood frequency %#v", report.MoodMentalFrequency)
	}
	if want := map[string]int{"Spotting": 1}; !reflect.DeepEqual(report.PeriodIndicatorFrequency, want) {
		t.Fatalf("unexpected period indicator frequency %#v", report.PeriodIndicatorFrequency)
	}
	if want := map[string]int{"High libido": 1}; !reflect.DeepEqual(report.SexualHealthFrequency, want) {
		t.Fatalf("unexpected sexual health frequency %#v", report.SexualHealthFrequency)
	}
	if report.MostFrequentSymptom == nil || *report.MostFrequentSymptom != "Cramps" {
		t.Fatalf("expected Cramps as most frequent symptom, got %v", report.MostFrequentSymptom)
	}
}

func TestComputeTrendsMostFrequentTieBreakIsFirstSeen(t *testing.T) {
	logs := []models.DailyLog{
		{Date: mustParseDay("2024-05-02"), PhysicalPainSymptoms: []string{"Cramps", "Headache"}},
		{Date: mustParseDay("2024-05-01"), PhysicalPainSymptoms: []string{"Headache", "Cramps"}},
	}

	report := ComputeTrends(logs)
	if report.MostFrequentSymptom == nil || *report.MostFrequentSymptom != "Headache" {
		t.Fatalf("expected Headache (first seen in date order), got %v", report.MostFrequentSymptom)
	}
}

func TestComputeTrendsFallsBackToMood(t *testing.T) {
	logs := []models.DailyLog{
		{Date: mustParseDay("2024-05-01"), MoodMentalStates: []string{"Irritable"}},
		{Date: mustParseDay("2024-05-02"), MoodMentalStates: []string{"Calm", "Irritable"}},
	}

	report := ComputeTrends(logs)
	if report.MostFrequentSymptom == nil || *report.MostFrequentSymptom != "Irritable" {
		t.Fatalf("expected Irritable from mood fallback, got %v", report.MostFrequentSymptom)
	}
}

func TestComputeTrendsIntensityClassification(t *testing.T) {
	tests := []struct {
		name        string
		intensities []*int
		want        IntensityTrend
	}{
		{name: "increasing", intensities: []*int{intPtr(2), intPtr(2), intPtr(2), intPtr(8), intPtr(9), intPtr(9)}, want: IntensityIncreasing},
		{name: "decreasing", intensities: []*int{intPtr(9), intPtr(9), intPtr(2), intPtr(2)}, want: IntensityDecreasing},
		{name: "within threshold", intensities: []*int{intPtr(4), intPtr(5)}, want: IntensityStable},
		{name: "zero and missing excluded", intensities: []*int{intPtr(0), nil, intPtr(5), intPtr(5), intPtr(0), intPtr(6)}, want: IntensityStable},
		{name: "odd length gives extra to second half", intensities: []*int{intPtr(5), intPtr(1), intPtr(9)}, want: IntensityStable},
		{name: "empty first half averages zero", intensities: []*int{nil, nil, intPtr(3), intPtr(3)}, want: IntensityIncreasing},
		{name: "single log", intensities: []*int{intPtr(1)}, want: IntensityStable},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			logs := make([]models.DailyLog, 0, len(testCase.intensities))
			start := mustParseDay("2024-06-01")
			for index, intensity := range testCase.intensities {
				logs = append(logs, models.DailyLog{Date: start.AddDate(0, 0, index), FlowIntensity: intensity})
			}
			// Reverse so the analyzer has to sort by date itself.
			for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
				logs[i], logs[j] = logs[j], logs[i]
			}

			if got := ComputeTrends(logs).SymptomIntensityChange; got != testCase.want {
				t.Fatalf("expected %s, got %s", testCase.want, got)
			}
		})
	}
}

func TestComputeTrendsIsIdempotent(t *testing.T) {
	logs := []models.DailyLog{
		{Date: mustParseDay("2024-05-01"), PhysicalPainSymptoms: []string{"Cramps"}, FlowIntensity: intPtr(3)},
		{Date: mustParseDay("2024-05-02"), MoodMentalStates: []string{"Calm"}, FlowIntensity: intPtr(6)},
	}

	first := ComputeTrends(logs)
	second := ComputeTrends(logs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports, got %#v and %#v", first, second)
	}
	if !logs[0].Date.Equal(mustParseDay("2024-05-01")) {
		t.Fatal("expected input logs to stay untouched")
	}
}
