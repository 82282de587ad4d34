package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/cyclesight/internal/db"
	"github.com/terraincognita07/cyclesight/internal/services"
)

// RunRefreshCycleDaysCommand recomputes the stored cycle day of every active
// cycle once, outside the server's schedule.
func RunRefreshCycleDaysCommand(dbPath string, location *time.Location, out io.Writer) error {
	if location == nil {
		location = time.UTC
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	cycles := db.NewCycleRepository(database)
	active, err := cycles.ListActive()
	if err != nil {
		return fmt.Errorf("list active cycles: %w", err)
	}

	service := services.NewCycleService(cycles, func() time.Time {
		return time.Now().In(location)
	})
	refreshed, err := service.RefreshActiveCycleDays(active)
	if err != nil {
		return fmt.Errorf("refresh cycle days: %w", err)
	}

	fmt.Fprintf(out, "Refreshed %d of %d active cycles\n", refreshed, len(active))
	return nil
}
