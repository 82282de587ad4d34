package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclesight/internal/api"
	"github.com/terraincognita07/cyclesight/internal/cache"
	"github.com/terraincognita07/cyclesight/internal/cli"
	"github.com/terraincognita07/cyclesight/internal/config"
	"github.com/terraincognita07/cyclesight/internal/db"
	"github.com/terraincognita07/cyclesight/internal/jobs"
	"github.com/terraincognita07/cyclesight/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().WithError(err).Fatal("config load failed")
	}
	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.Get()
	time.Local = cfg.Location

	if len(os.Args) > 1 && os.Args[1] == "refresh-cycle-days" {
		if err := cli.RunRefreshCycleDaysCommand(cfg.DBPath, cfg.Location, os.Stdout); err != nil {
			log.WithError(err).Fatal("refresh-cycle-days failed")
		}
		return
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}

	reportCache, err := cache.New(cfg.CacheEnabled, cfg.CacheTTL, cfg.CacheMaxItems)
	if err != nil {
		log.WithError(err).Fatal("cache init failed")
	}
	defer reportCache.Close()

	handler, err := api.NewHandler(database, reportCache, cfg.Location)
	if err != nil {
		log.WithError(err).Fatal("handler init failed")
	}

	scheduler := jobs.NewScheduler(
		db.NewCycleRepository(database),
		handler.CycleService(),
		reportCache,
		log,
		cfg.Location,
		cfg.CycleDayRefreshSpec,
	)
	if err := scheduler.Start(); err != nil {
		log.WithError(err).Fatal("scheduler init failed")
	}
	defer scheduler.Stop()

	app := newApp(handler, log)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	log.WithFields(logrus.Fields{
		"port": cfg.Port,
		"db":   cfg.DBPath,
		"tz":   cfg.Location.String(),
	}).Info("cyclesight listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Error("server exited")
	}
}

func newApp(handler *api.Handler, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "CycleSight",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{Output: log.Writer()}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}
