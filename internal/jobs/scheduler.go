package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclesight/internal/models"
)

type ActiveCycleLister interface {
	ListActive() ([]models.Cycle, error)
}

type CycleDayRefresher interface {
	RefreshActiveCycleDays(cycles []models.Cycle) (int, error)
}

type CacheInvalidator interface {
	Invalidate(userID string)
}

// Scheduler recomputes the current cycle day of every active cycle on a
// cron schedule.
type Scheduler struct {
	cronEngine  *cron.Cron
	cycles      ActiveCycleLister
	refresher   CycleDayRefresher
	invalidator CacheInvalidator
	logger      *logrus.Logger
	refreshSpec string
}

func NewScheduler(
	cycles ActiveCycleLister,
	refresher CycleDayRefresher,
	invalidator CacheInvalidator,
	logger *logrus.Logger,
	location *time.Location,
	refreshSpec string,
) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		cronEngine:  cron.New(cron.WithLocation(location)),
		cycles:      cycles,
		refresher:   refresher,
		invalidator: invalidator,
		logger:      logger,
		refreshSpec: refreshSpec,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.refreshSpec, func() {
		if _, err := s.RefreshCycleDays(); err != nil {
			s.logger.WithError(err).Error("cycle day refresh failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule cycle day refresh %q: %w", s.refreshSpec, err)
	}

	s.cronEngine.Start()
	s.logger.WithField("spec", s.refreshSpec).Info("scheduler started")
	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cronEngine.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// RefreshCycleDays runs one refresh pass and reports how many cycles changed.
func (s *Scheduler) RefreshCycleDays() (int, error) {
	active, err := s.cycles.ListActive()
	if err != nil {
		return 0, fmt.Errorf("list active cycles: %w", err)
	}

	refreshed, err := s.refresher.RefreshActiveCycleDays(active)
	if refreshed > 0 && s.invalidator != nil {
		seen := make(map[string]struct{}, len(active))
		for _, cycle := range active {
			if _, ok := seen[cycle.UserID]; ok {
				continue
			}
			seen[cycle.UserID] = struct{}{}
			s.invalidator.Invalidate(cycle.UserID)
		}
	}
	if err != nil {
		return refreshed, err
	}

	s.logger.WithFields(logrus.Fields{
		"active":    len(active),
		"refreshed": refreshed,
	}).Info("cycle days refreshed")
	return refreshed, nil
}
