package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/cyclesight/internal/cache"
	"github.com/terraincognita07/cyclesight/internal/db"
	"github.com/terraincognita07/cyclesight/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	location        *time.Location
	repositories    *db.Repositories
	cycleService    *services.CycleService
	dailyLogService *services.DailyLogService
	trendService    *services.TrendService
	reportService   *services.ReportService
	tipService      *services.TipService
	reportCache     *cache.ReportCache
}

func NewHandler(database *gorm.DB, reportCache *cache.ReportCache, location *time.Location) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if reportCache == nil {
		return nil, errors.New("report cache is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		location:    location,
		reportCache: reportCache,
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.cycleService = services.NewCycleService(handler.repositories.Cycles, handler.now)
	handler.dailyLogService = services.NewDailyLogService(handler.repositories.DailyLogs)
	handler.trendService = services.NewTrendService(handler.repositories.DailyLogs)
	handler.reportService = services.NewReportService(handler.repositories.Cycles, handler.repositories.DailyLogs)
	handler.tipService = services.NewTipService(handler.repositories.Tips, handler.repositories.Cycles, handler.now)
	return handler
}

// CycleService exposes the handler's cycle service to background jobs.
func (handler *Handler) CycleService() *services.CycleService {
	return handler.cycleService
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
