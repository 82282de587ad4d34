package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	cycles := api.Group("/cycles")
	cycles.Post("", handler.CreateCycle)
	cycles.Get("", handler.ListCycles)
	cycles.Get("/current", handler.GetCurrentCycle)
	cycles.Get("/calendar", handler.GetCalendar)
	cycles.Get("/next-period", handler.GetNextPeriod)
	cycles.Get("/:id", handler.GetCycle)
	cycles.Get("/:id/predictions", handler.GetCyclePredictions)
	cycles.Patch("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)

	dailyLogs := api.Group("/daily-logs")
	dailyLogs.Post("", handler.CreateDailyLog)
	dailyLogs.Get("", handler.ListDailyLogs)
	dailyLogs.Get("/date-range", handler.ListDailyLogsInRange)
	dailyLogs.Get("/trends", handler.GetTrends)
	dailyLogs.Get("/most-frequent", handler.GetMostFrequentSymptom)
	dailyLogs.Get("/:id", handler.GetDailyLog)
	dailyLogs.Patch("/:id", handler.UpdateDailyLog)
	dailyLogs.Delete("/:id", handler.DeleteDailyLog)

	tips := api.Group("/tips")
	tips.Post("", handler.CreateTip)
	tips.Get("", handler.ListTips)
	tips.Get("/current", handler.GetCurrentTips)
	tips.Get("/cycle-day/:day", handler.ListTipsForCycleDay)
	tips.Get("/phase/:phase", handler.ListTipsForPhase)
	tips.Get("/:id", handler.GetTip)
	tips.Patch("/:id", handler.UpdateTip)
	tips.Delete("/:id", handler.DeleteTip)

	reports := api.Group("/health-reports")
	reports.Get("/monthly", handler.GetMonthlyReport)
	reports.Get("/cycle/:cycleId", handler.GetCycleSummary)
	reports.Get("/symptoms", handler.GetSymptomFrequency)
	reports.Get("/flow-pattern", handler.GetFlowPattern)
}
