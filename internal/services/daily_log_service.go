package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

var ErrDailyLogNotFound = errors.New("daily log not found")

type DailyLogRepository interface {
	DailyLogReader
	ListAll() ([]models.DailyLog, error)
	FindByID(logID string) (models.DailyLog, bool, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
	Delete(logID string) (bool, error)
}

type DailyLogService struct {
	logs DailyLogRepository
}

// DailyLogUpdate carries optional field changes; nil fields are left untouched.
type DailyLogUpdate struct {
	Date                   *time.Time
	CycleDay               *int
	PhysicalPainSymptoms   []string
	MoodMentalStates       []string
	FlowIntensity          *int
	PeriodIndicators       []string
	SexualHealthIndicators []string
	Notes                  *string
}

func NewDailyLogService(logs DailyLogRepository) *DailyLogService {
	return &DailyLogService{logs: logs}
}

func (service *DailyLogService) Create(entry *models.DailyLog) error {
	if err := NormalizeDailyLog(entry); err != nil {
		return err
	}
	return service.logs.Create(entry)
}

func (service *DailyLogService) Update(logID string, update DailyLogUpdate) (models.DailyLog, error) {
	entry, err := service.Find(logID)
	if err != nil {
		return models.DailyLog{}, err
	}

	if update.Date != nil {
		entry.Date = *update.Date
	}
	if update.CycleDay != nil {
		entry.CycleDay = update.CycleDay
	}
	if update.PhysicalPainSymptoms != nil {
		entry.PhysicalPainSymptoms = update.PhysicalPainSymptoms
	}
	if update.MoodMentalStates != nil {
		entry.MoodMentalStates = update.MoodMentalStates
	}
	if update.FlowIntensity != nil {
		entry.FlowIntensity = update.FlowIntensity
	}
	if update.PeriodIndicators != nil {
		entry.PeriodIndicators = update.PeriodIndicators
	}
	if update.SexualHealthIndicators != nil {
		entry.SexualHealthIndicators = update.SexualHealthIndicators
	}
	if update.Notes != nil {
		entry.Notes = *update.Notes
	}
	if err := NormalizeDailyLog(&entry); err != nil {
		return models.DailyLog{}, err
	}

	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, fmt.Errorf("save daily log %s: %w", logID, err)
	}
	return entry, nil
}

func (service *DailyLogService) Delete(logID string) error {
	deleted, err := service.logs.Delete(logID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDailyLogNotFound
	}
	return nil
}

func (service *DailyLogService) Find(logID string) (models.DailyLog, error) {
	entry, found, err := service.logs.FindByID(logID)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		return models.DailyLog{}, ErrDailyLogNotFound
	}
	return entry, nil
}

// ListForUser returns the user's logs, most recent first.
func (service *DailyLogService) ListForUser(userID string) ([]models.DailyLog, error) {
	return service.logs.ListByUser(userID)
}

// ListAll returns every stored log, most recent first.
func (service *DailyLogService) ListAll() ([]models.DailyLog, error) {
	return service.logs.ListAll()
}

// ListInRange returns the user's logs inside dateRange in date order.
func (service *DailyLogService) ListInRange(userID string, dateRange DateRange) ([]models.DailyLog, error) {
	return fetchLogs(service.logs, userID, &dateRange)
}
