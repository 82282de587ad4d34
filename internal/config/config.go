package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port                string
	DBPath              string
	Location            *time.Location
	LogLevel            string
	Environment         string
	CacheEnabled        bool
	CacheTTL            time.Duration
	CacheMaxItems       int64
	CycleDayRefreshSpec string
}

// Load reads configuration from the environment, after merging a .env file
// when one is present. Existing environment variables win over .env values.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	location, err := time.LoadLocation(v.GetString("TZ"))
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", v.GetString("TZ"), err)
	}

	ttlSeconds := v.GetInt("CACHE_TTL_SECONDS")
	if ttlSeconds < 0 {
		return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS %d", ttlSeconds)
	}
	maxItems := v.GetInt64("CACHE_MAX_ITEMS")
	if maxItems <= 0 {
		return nil, fmt.Errorf("invalid CACHE_MAX_ITEMS %d", maxItems)
	}

	return &AppConfig{
		Port:                v.GetString("PORT"),
		DBPath:              v.GetString("DB_PATH"),
		Location:            location,
		LogLevel:            strings.ToLower(v.GetString("LOG_LEVEL")),
		Environment:         strings.ToLower(v.GetString("ENVIRONMENT")),
		CacheEnabled:        v.GetBool("CACHE_ENABLED"),
		CacheTTL:            time.Duration(ttlSeconds) * time.Second,
		CacheMaxItems:       maxItems,
		CycleDayRefreshSpec: v.GetString("CYCLE_DAY_REFRESH_SPEC"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", filepath.Join("data", "cyclesight.db"))
	v.SetDefault("TZ", "UTC")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("CACHE_ENABLED", true)
	v.SetDefault("CACHE_TTL_SECONDS", 60)
	v.SetDefault("CACHE_MAX_ITEMS", 10000)
	// Five past midnight, after the calendar day has turned over.
	v.SetDefault("CYCLE_DAY_REFRESH_SPEC", "5 0 * * *")
}
