package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

var (
	ErrCycleNotFound      = errors.New("cycle not found")
	ErrInvalidCycleLength = errors.New("invalid cycle length")
	ErrInvalidMonth       = errors.New("invalid month")
)

// CycleReader must return ListByUser results ordered by start date descending.
type CycleReader interface {
	ListByUser(userID string) ([]models.Cycle, error)
	FindByID(cycleID string) (models.Cycle, bool, error)
	FindActiveByUser(userID string) (models.Cycle, bool, error)
}

type CycleWriter interface {
	Create(cycle *models.Cycle) error
	Save(cycle *models.Cycle) error
	Delete(cycleID string) (bool, error)
}

type CycleRepository interface {
	CycleReader
	CycleWriter
	ListAll() ([]models.Cycle, error)
}

type CycleService struct {
	cycles CycleRepository
	now    func() time.Time
}

type CyclePredictions struct {
	FertileWindow   *Window `json:"fertileWindow"`
	OvulationWindow *Window `json:"ovulationWindow"`
}

// CycleUpdate carries optional field changes; nil fields are left untouched.
type CycleUpdate struct {
	StartDate       *time.Time
	EndDate         *time.Time
	CycleLength     *int
	PeriodStartDate *time.Time
	PeriodEndDate   *time.Time
	Status          *models.CycleStatus
}

func NewCycleService(cycles CycleRepository, now func() time.Time) *CycleService {
	if now == nil {
		now = time.Now
	}
	return &CycleService{cycles: cycles, now: now}
}

func (service *CycleService) Create(cycle *models.Cycle) error {
	if cycle.CycleLength < 0 {
		return ErrInvalidCycleLength
	}
	if cycle.CycleLength == 0 {
		cycle.CycleLength = models.DefaultCycleLength
	}
	cycle.Status = models.CycleStatusActive
	normalizeCycleDates(cycle)
	if cycle.PeriodStartDate != nil {
		day := CycleDay(*cycle.PeriodStartDate, service.now())
		cycle.CurrentCycleDay = &day
	}
	return service.cycles.Create(cycle)
}

func (service *CycleService) Update(cycleID string, update CycleUpdate) (models.Cycle, error) {
	cycle, err := service.Find(cycleID)
	if err != nil {
		return models.Cycle{}, err
	}

	if update.StartDate != nil {
		cycle.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		cycle.EndDate = update.EndDate
	}
	if update.CycleLength != nil {
		if *update.CycleLength <= 0 {
			return models.Cycle{}, ErrInvalidCycleLength
		}
		cycle.CycleLength = *update.CycleLength
	}
	if update.PeriodEndDate != nil {
		cycle.PeriodEndDate = update.PeriodEndDate
	}
	if update.Status != nil {
		cycle.Status = *update.Status
	}
	if update.PeriodStartDate != nil {
		cycle.PeriodStartDate = update.PeriodStartDate
		day := CycleDay(*update.PeriodStartDate, service.now())
		cycle.CurrentCycleDay = &day
	}
	normalizeCycleDates(&cycle)

	if err := service.cycles.Save(&cycle); err != nil {
		return models.Cycle{}, fmt.Errorf("save cycle %s: %w", cycleID, err)
	}
	return cycle, nil
}

func (service *CycleService) Delete(cycleID string) error {
	deleted, err := service.cycles.Delete(cycleID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCycleNotFound
	}
	return nil
}

func (service *CycleService) Find(cycleID string) (models.Cycle, error) {
	cycle, found, err := service.cycles.FindByID(cycleID)
	if err != nil {
		return models.Cycle{}, err
	}
	if !found {
		return models.Cycle{}, ErrCycleNotFound
	}
	return cycle, nil
}

func (service *CycleService) ListForUser(userID string) ([]models.Cycle, error) {
	return service.cycles.ListByUser(userID)
}

// ListAll returns every stored cycle, newest start first.
func (service *CycleService) ListAll() ([]models.Cycle, error) {
	return service.cycles.ListAll()
}

// Current returns the user's active cycle, or nil when none is active.
func (service *CycleService) Current(userID string) (*models.Cycle, error) {
	cycle, found, err := service.cycles.FindActiveByUser(userID)
	if err != nil || !found {
		return nil, err
	}
	return &cycle, nil
}

func (service *CycleService) PredictNextPeriodForUser(userID string) (*time.Time, error) {
	cycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return PredictNextPeriod(cycles), nil
}

func (service *CycleService) Predictions(cycleID string) (CyclePredictions, error) {
	cycle, err := service.Find(cycleID)
	if err != nil {
		return CyclePredictions{}, err
	}
	return CyclePredictions{
		FertileWindow:   FertileWindow(cycle.PeriodStartDate),
		OvulationWindow: OvulationWindow(cycle.PeriodStartDate),
	}, nil
}

func (service *CycleService) Calendar(userID string, month int, year int) (CalendarData, error) {
	if month < 1 || month > 12 {
		return CalendarData{}, ErrInvalidMonth
	}
	cycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return CalendarData{}, err
	}
	return BuildCalendar(cycles, time.Month(month), year), nil
}

// RefreshActiveCycleDays recomputes the stored cycle day of every active
// cycle in cycles against today and saves the ones that changed.
func (service *CycleService) RefreshActiveCycleDays(cycles []models.Cycle) (int, error) {
	today := service.now()
	refreshed := 0
	for index := range cycles {
		cycle := &cycles[index]
		if cycle.Status != models.CycleStatusActive || cycle.PeriodStartDate == nil {
			continue
		}
		day := CycleDay(*cycle.PeriodStartDate, today)
		if cycle.CurrentCycleDay != nil && *cycle.CurrentCycleDay == day {
			continue
		}
		cycle.CurrentCycleDay = &day
		if err := service.cycles.Save(cycle); err != nil {
			return refreshed, fmt.Errorf("refresh cycle %s: %w", cycle.ID, err)
		}
		refreshed++
	}
	return refreshed, nil
}

func normalizeCycleDates(cycle *models.Cycle) {
	cycle.StartDate = DateOnly(cycle.StartDate)
	cycle.EndDate = dateOnlyPtr(cycle.EndDate)
	cycle.PeriodStartDate = dateOnlyPtr(cycle.PeriodStartDate)
	cycle.PeriodEndDate = dateOnlyPtr(cycle.PeriodEndDate)
}

func dateOnlyPtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	day := DateOnly(*value)
	return &day
}
