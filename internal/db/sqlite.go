package db

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/terraincognita07/cyclesight/internal/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const busyTimeoutMillis = 5000

// OpenSQLite opens the cycle store at path, creating its directory, and
// brings the schema up to date before returning.
func OpenSQLite(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("prepare cycle store directory: %w", err)
	}

	database, err := gorm.Open(sqlite.Open(cycleStoreDSN(path)), &gorm.Config{
		Logger:  queryLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open cycle store %s: %w", path, err)
	}

	if err := migrateSchema(database); err != nil {
		return nil, fmt.Errorf("migrate cycle store: %w", err)
	}
	return database, nil
}

func cycleStoreDSN(path string) string {
	pragmas := url.Values{}
	pragmas.Add("_pragma", "foreign_keys(1)")
	pragmas.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMillis))
	return path + "?" + pragmas.Encode()
}

// queryLogger routes slow queries and errors through the application logger.
func queryLogger() gormlogger.Interface {
	return gormlogger.New(logger.Get(), gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
