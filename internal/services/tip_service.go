package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
)

var (
	ErrTipNotFound        = errors.New("tip not found")
	ErrTipTitleRequired   = errors.New("tip title is required")
	ErrTipContentRequired = errors.New("tip content is required")
	ErrInvalidCyclePhase  = errors.New("invalid cycle phase")
	ErrInvalidCycleDay    = errors.New("invalid cycle day")
)

// TipRepository must return lists ordered by creation time.
type TipRepository interface {
	List() ([]models.Tip, error)
	ListByCycleDay(cycleDay int) ([]models.Tip, error)
	ListByPhase(phase models.CyclePhase) ([]models.Tip, error)
	FindByID(tipID string) (models.Tip, bool, error)
	Create(tip *models.Tip) error
	Save(tip *models.Tip) error
	Delete(tipID string) (bool, error)
}

type TipService struct {
	tips   TipRepository
	cycles CycleReader
	now    func() time.Time
}

// TipUpdate carries optional field changes; nil fields are left untouched.
type TipUpdate struct {
	Title      *string
	Content    *string
	Category   *string
	CycleDay   *int
	CyclePhase *models.CyclePhase
}

// CurrentTips is the guidance matching where the user is in the active cycle.
type CurrentTips struct {
	CycleDay *int               `json:"cycleDay"`
	Phase    *models.CyclePhase `json:"phase"`
	Tips     []models.Tip       `json:"tips"`
}

func NewTipService(tips TipRepository, cycles CycleReader, now func() time.Time) *TipService {
	if now == nil {
		now = time.Now
	}
	return &TipService{tips: tips, cycles: cycles, now: now}
}

func (service *TipService) Create(tip *models.Tip) error {
	if err := normalizeTip(tip); err != nil {
		return err
	}
	return service.tips.Create(tip)
}

func (service *TipService) Update(tipID string, update TipUpdate) (models.Tip, error) {
	tip, err := service.Find(tipID)
	if err != nil {
		return models.Tip{}, err
	}

	if update.Title != nil {
		tip.Title = *update.Title
	}
	if update.Content != nil {
		tip.Content = *update.Content
	}
	if update.Category != nil {
		tip.Category = *update.Category
	}
	if update.CycleDay != nil {
		tip.CycleDay = update.CycleDay
	}
	if update.CyclePhase != nil {
		tip.CyclePhase = update.CyclePhase
	}
	if err := normalizeTip(&tip); err != nil {
		return models.Tip{}, err
	}

	if err := service.tips.Save(&tip); err != nil {
		return models.Tip{}, fmt.Errorf("save tip %s: %w", tipID, err)
	}
	return tip, nil
}

func (service *TipService) Delete(tipID string) error {
	deleted, err := service.tips.Delete(tipID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTipNotFound
	}
	return nil
}

func (service *TipService) Find(tipID string) (models.Tip, error) {
	tip, found, err := service.tips.FindByID(tipID)
	if err != nil {
		return models.Tip{}, err
	}
	if !found {
		return models.Tip{}, ErrTipNotFound
	}
	return tip, nil
}

func (service *TipService) List() ([]models.Tip, error) {
	return service.tips.List()
}

func (service *TipService) ForCycleDay(cycleDay int) ([]models.Tip, error) {
	if cycleDay < 1 {
		return nil, ErrInvalidCycleDay
	}
	return service.tips.ListByCycleDay(cycleDay)
}

func (service *TipService) ForPhase(phase models.CyclePhase) ([]models.Tip, error) {
	if !phase.Valid() {
		return nil, ErrInvalidCyclePhase
	}
	return service.tips.ListByPhase(phase)
}

// Current returns the tips for today's cycle day and phase in the user's
// active cycle. Without an anchored active cycle the result has no tips.
func (service *TipService) Current(userID string) (CurrentTips, error) {
	result := CurrentTips{Tips: []models.Tip{}}
	cycle, found, err := service.cycles.FindActiveByUser(userID)
	if err != nil {
		return CurrentTips{}, err
	}
	if !found || cycle.PeriodStartDate == nil {
		return result, nil
	}

	today := service.now()
	phase, ok := PhaseOn(cycle, today)
	if !ok {
		return result, nil
	}
	cycleDay := CycleDay(*cycle.PeriodStartDate, today)
	result.CycleDay = &cycleDay
	result.Phase = &phase

	byDay, err := service.tips.ListByCycleDay(cycleDay)
	if err != nil {
		return CurrentTips{}, err
	}
	byPhase, err := service.tips.ListByPhase(phase)
	if err != nil {
		return CurrentTips{}, err
	}

	seen := make(map[string]struct{}, len(byDay)+len(byPhase))
	for _, tip := range append(byDay, byPhase...) {
		if _, duplicate := seen[tip.ID]; duplicate {
			continue
		}
		seen[tip.ID] = struct{}{}
		result.Tips = append(result.Tips, tip)
	}
	return result, nil
}

func normalizeTip(tip *models.Tip) error {
	tip.Title = strings.TrimSpace(tip.Title)
	tip.Content = strings.TrimSpace(tip.Content)
	tip.Category = strings.TrimSpace(tip.Category)
	if tip.Title == "" {
		return ErrTipTitleRequired
	}
	if tip.Content == "" {
		return ErrTipContentRequired
	}
	if tip.CycleDay != nil && *tip.CycleDay < 1 {
		return ErrInvalidCycleDay
	}
	if tip.CyclePhase != nil && !tip.CyclePhase.Valid() {
		return ErrInvalidCyclePhase
	}
	return nil
}
