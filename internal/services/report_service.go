package services

import (
	"time"
)

type ReportService struct {
	cycles CycleReader
	logs   DailyLogReader
}

func NewReportService(cycles CycleReader, logs DailyLogReader) *ReportService {
	return &ReportService{
		cycles: cycles,
		logs:   logs,
	}
}

func (service *ReportService) CycleSummary(cycleID string) (CycleSummary, error) {
	cycle, found, err := service.cycles.FindByID(cycleID)
	if err != nil {
		return CycleSummary{}, err
	}
	if !found {
		return CycleSummary{}, ErrCycleNotFound
	}

	history, err := service.cycles.ListByUser(cycle.UserID)
	if err != nil {
		return CycleSummary{}, err
	}
	return BuildCycleSummary(cycle, history), nil
}

func (service *ReportService) SymptomFrequency(userID string, dateRange DateRange) (SymptomFrequencyReport, error) {
	logs, err := fetchLogs(service.logs, userID, &dateRange)
	if err != nil {
		return SymptomFrequencyReport{}, err
	}
	return BuildSymptomFrequency(logs), nil
}

func (service *ReportService) FlowPattern(userID string, dateRange DateRange) ([]FlowPoint, error) {
	logs, err := fetchLogs(service.logs, userID, &dateRange)
	if err != nil {
		return nil, err
	}
	return BuildFlowPattern(logs), nil
}

func (service *ReportService) MonthlyReport(userID string, month int, year int) (MonthlyReport, error) {
	if month < 1 || month > 12 {
		return MonthlyReport{}, ErrInvalidMonth
	}

	monthStart, monthEnd := MonthBounds(time.Month(month), year)
	cycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return MonthlyReport{}, err
	}
	logs, err := fetchLogs(service.logs, userID, &DateRange{Start: monthStart, End: monthEnd})
	if err != nil {
		return MonthlyReport{}, err
	}
	return BuildMonthlyReport(cycles, logs, time.Month(month), year), nil
}
