package services

import (
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

type DailyLogReader interface {
	ListByUser(userID string) ([]models.DailyLog, error)
	ListByUserRange(userID string, start time.Time, end time.Time) ([]models.DailyLog, error)
}

type TrendService struct {
	logs DailyLogReader
}

func NewTrendService(logs DailyLogReader) *TrendService {
	return &TrendService{logs: logs}
}

func (service *TrendService) Trends(userID string, dateRange *DateRange) (TrendsReport, error) {
	logs, err := fetchLogs(service.logs, userID, dateRange)
	if err != nil {
		return TrendsReport{}, err
	}
	return ComputeTrends(logs), nil
}

func (service *TrendService) MostFrequentSymptom(userID string, dateRange *DateRange) (*string, error) {
	report, err := service.Trends(userID, dateRange)
	if err != nil {
		return nil, err
	}
	return report.MostFrequentSymptom, nil
}

// fetchLogs loads the user's logs within dateRange, or all of them when
// dateRange is nil. A malformed range yields no logs.
func fetchLogs(reader DailyLogReader, userID string, dateRange *DateRange) ([]models.DailyLog, error) {
	if dateRange == nil {
		return reader.ListByUser(userID)
	}
	if dateRange.Empty() {
		return []models.DailyLog{}, nil
	}
	return reader.ListByUserRange(userID, DateOnly(dateRange.Start), DateOnly(dateRange.End))
}
