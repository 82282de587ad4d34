package services

import (
	"sort"

	"github.com/terraincognita07/cyclesight/internal/models"
)

type IntensityTrend string

const (
	IntensityIncreasing IntensityTrend = "increasing"
	IntensityDecreasing IntensityTrend = "decreasing"
	IntensityStable     IntensityTrend = "stable"
)

// intensityTrendThreshold is the minimum change in average flow intensity
// between the two halves of a log set that counts as a trend.
const intensityTrendThreshold = 1.0

type TrendsReport struct {
	MostFrequentSymptom      *string        `json:"mostFrequentSymptom"`
	SymptomIntensityChange   IntensityTrend `json:"symptomIntensityChange"`
	PhysicalPainFrequency    map[string]int `json:"physicalPainFrequency"`
	MoodMentalFrequency      map[string]int `json:"moodMentalFrequency"`
	PeriodIndicatorFrequency map[string]int `json:"periodIndicatorFrequency"`
	SexualHealthFrequency    map[string]int `json:"sexualHealthFrequency"`
}

// frequencyCounter counts string occurrences and remembers the order in
// which keys were first seen, which is the tie-break for Top.
type frequencyCounter struct {
	counts map[string]int
	order  []string
}

func newFrequencyCounter() *frequencyCounter {
	return &frequencyCounter{counts: make(map[string]int)}
}

func (counter *frequencyCounter) AddAll(items []string) {
	for _, item := range items {
		if _, seen := counter.counts[item]; !seen {
			counter.order = append(counter.order, item)
		}
		counter.counts[item]++
	}
}

func (counter *frequencyCounter) Top() *string {
	best := ""
	bestCount := 0
	for _, key := range counter.order {
		if count := counter.counts[key]; count > bestCount {
			best = key
			bestCount = count
		}
	}
	if bestCount == 0 {
		return nil
	}
	return &best
}

func (counter *frequencyCounter) Map() map[string]int {
	result := make(map[string]int, len(counter.counts))
	for key, count := range counter.counts {
		result[key] = count
	}
	return result
}

func ComputeTrends(logs []models.DailyLog) TrendsReport {
	sorted := sortLogsByDateAsc(logs)

	physicalPain := newFrequencyCounter()
	moodMental := newFrequencyCounter()
	periodIndicators := newFrequencyCounter()
	sexualHealth := newFrequencyCounter()
	for _, entry := range sorted {
		physicalPain.AddAll(entry.PhysicalPainSymptoms)
		moodMental.AddAll(entry.MoodMentalStates)
		periodIndicators.AddAll(entry.PeriodIndicators)
		sexualHealth.AddAll(entry.SexualHealthIndicators)
	}

	mostFrequent := physicalPain.Top()
	if mostFrequent == nil {
		mostFrequent = moodMental.Top()
	}

	return TrendsReport{
		MostFrequentSymptom:      mostFrequent,
		SymptomIntensityChange:   ClassifyIntensityTrend(sorted),
		PhysicalPainFrequency:    physicalPain.Map(),
		MoodMentalFrequency:      moodMental.Map(),
		PeriodIndicatorFrequency: periodIndicators.Map(),
		SexualHealthFrequency:    sexualHealth.Map(),
	}
}

// ClassifyIntensityTrend expects logs sorted by date ascending. Odd-length
// sets give the extra entry to the second half.
func ClassifyIntensityTrend(sorted []models.DailyLog) IntensityTrend {
	midpoint := len(sorted) / 2
	diff := averagePositiveIntensity(sorted[midpoint:]) - averagePositiveIntensity(sorted[:midpoint])
	switch {
	case diff > intensityTrendThreshold:
		return IntensityIncreasing
	case diff < -intensityTrendThreshold:
		return IntensityDecreasing
	default:
		return IntensityStable
	}
}

func averagePositiveIntensity(logs []models.DailyLog) float64 {
	intensities := make([]int, 0, len(logs))
	for _, entry := range logs {
		if intensity := entry.Intensity(); intensity > 0 {
			intensities = append(intensities, intensity)
		}
	}
	return averageInts(intensities)
}

func sortLogsByDateAsc(logs []models.DailyLog) []models.DailyLog {
	sorted := make([]models.DailyLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DateOnly(sorted[i].Date).Before(DateOnly(sorted[j].Date))
	})
	return sorted
}
