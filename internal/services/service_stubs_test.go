package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

type stubCycleRepository struct {
	cycles    []models.Cycle
	listErr   error
	saveErr   error
	saved     []models.Cycle
	listCalls int
}

func (stub *stubCycleRepository) ListByUser(userID string) ([]models.Cycle, error) {
	stub.listCalls++
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.Cycle, 0, len(stub.cycles))
	for _, cycle := range stub.cycles {
		if cycle.UserID == userID {
			result = append(result, cycle)
		}
	}
	return SortCyclesByStartDesc(result), nil
}

func (stub *stubCycleRepository) FindByID(cycleID string) (models.Cycle, bool, error) {
	for _, cycle := range stub.cycles {
		if cycle.ID == cycleID {
			return cycle, true, nil
		}
	}
	return models.Cycle{}, false, nil
}

func (stub *stubCycleRepository) FindActiveByUser(userID string) (models.Cycle, bool, error) {
	cycles, err := stub.ListByUser(userID)
	if err != nil {
		return models.Cycle{}, false, err
	}
	for _, cycle := range cycles {
		if cycle.Status == models.CycleStatusActive {
			return cycle, true, nil
		}
	}
	return models.Cycle{}, false, nil
}

func (stub *stubCycleRepository) Create(cycle *models.Cycle) error {
	if cycle.ID == "" {
		cycle.ID = "generated"
	}
	stub.cycles = append(stub.cycles, *cycle)
	return nil
}

func (stub *stubCycleRepository) Save(cycle *models.Cycle) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.saved = append(stub.saved, *cycle)
	for index := range stub.cycles {
		if stub.cycles[index].ID == cycle.ID {
			stub.cycles[index] = *cycle
		}
	}
	return nil
}

func (stub *stubCycleRepository) Delete(cycleID string) (bool, error) {
	for index := range stub.cycles {
		if stub.cycles[index].ID == cycleID {
			stub.cycles = append(stub.cycles[:index], stub.cycles[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubDailyLogReader struct {
	logs       []models.DailyLog
	err        error
	allCalls   int
	rangeCalls int
	lastStart  time.Time
	lastEnd    time.Time
}

func (stub *stubDailyLogReader) ListByUser(userID string) ([]models.DailyLog, error) {
	stub.allCalls++
	if stub.err != nil {
		return nil, stub.err
	}
	return stub.filter(userID, nil), nil
}

func (stub *stubDailyLogReader) ListByUserRange(userID string, start time.Time, end time.Time) ([]models.DailyLog, error) {
	stub.rangeCalls++
	stub.lastStart = start
	stub.lastEnd = end
	if stub.err != nil {
		return nil, stub.err
	}
	dateRange := NewDateRange(start, end)
	return stub.filter(userID, &dateRange), nil
}

func (stub *stubDailyLogReader) filter(userID string, dateRange *DateRange) []models.DailyLog {
	result := make([]models.DailyLog, 0, len(stub.logs))
	for _, entry := range stub.logs {
		if entry.UserID != userID {
			continue
		}
		if dateRange != nil && !dateRange.Contains(entry.Date) {
			continue
		}
		result = append(result, entry)
	}
	return result
}

var errStubLoad = errors.New("load failed")

func fixedNow(raw string) func() time.Time {
	return func() time.Time {
		return mustParseDay(raw).Add(15 * time.Hour)
	}
}

type stubDailyLogRepository struct {
	stubDailyLogReader
	saveErr error
	created int
}

func (stub *stubDailyLogRepository) FindByID(logID string) (models.DailyLog, bool, error) {
	for _, entry := range stub.logs {
		if entry.ID == logID {
			return entry, true, nil
		}
	}
	return models.DailyLog{}, false, nil
}

func (stub *stubDailyLogRepository) Create(entry *models.DailyLog) error {
	stub.created++
	if entry.ID == "" {
		entry.ID = "generated"
	}
	stub.logs = append(stub.logs, *entry)
	return nil
}

func (stub *stubDailyLogRepository) Save(entry *models.DailyLog) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	for index := range stub.logs {
		if stub.logs[index].ID == entry.ID {
			stub.logs[index] = *entry
		}
	}
	return nil
}

func (stub *stubDailyLogRepository) Delete(logID string) (bool, error) {
	for index := range stub.logs {
		if stub.logs[index].ID == logID {
			stub.logs = append(stub.logs[:index], stub.logs[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubCycleRepository) ListAll() ([]models.Cycle, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	return SortCyclesByStartDesc(append([]models.Cycle(nil), stub.cycles...)), nil
}

func (stub *stubDailyLogRepository) ListAll() ([]models.DailyLog, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	return append([]models.DailyLog(nil), stub.logs...), nil
}

type stubTipRepository struct {
	tips    []models.Tip
	created int
}

func (stub *stubTipRepository) List() ([]models.Tip, error) {
	return append([]models.Tip(nil), stub.tips...), nil
}

func (stub *stubTipRepository) ListByCycleDay(cycleDay int) ([]models.Tip, error) {
	result := make([]models.Tip, 0)
	for _, tip := range stub.tips {
		if tip.CycleDay != nil && *tip.CycleDay == cycleDay {
			result = append(result, tip)
		}
	}
	return result, nil
}

func (stub *stubTipRepository) ListByPhase(phase models.CyclePhase) ([]models.Tip, error) {
	result := make([]models.Tip, 0)
	for _, tip := range stub.tips {
		if tip.CyclePhase != nil && *tip.CyclePhase == phase {
			result = append(result, tip)
		}
	}
	return result, nil
}

func (stub *stubTipRepository) FindByID(tipID string) (models.Tip, bool, error) {
	for _, tip := range stub.tips {
		if tip.ID == tipID {
			return tip, true, nil
		}
	}
	return models.Tip{}, false, nil
}

func (stub *stubTipRepository) Create(tip *models.Tip) error {
	stub.created++
	if tip.ID == "" {
		tip.ID = "generated"
	}
	stub.tips = append(stub.tips, *tip)
	return nil
}

func (stub *stubTipRepository) Save(tip *models.Tip) error {
	for index := range stub.tips {
		if stub.tips[index].ID == tip.ID {
			stub.tips[index] = *tip
		}
	}
	return nil
}

func (stub *stubTipRepository) Delete(tipID string) (bool, error) {
	for index := range stub.tips {
		if stub.tips[index].ID == tipID {
			stub.tips = append(stub.tips[:index], stub.tips[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}
