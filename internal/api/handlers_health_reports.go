package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesight/internal/cache"
	"github.com/terraincognita07/cyclesight/internal/services"
)

func (handler *Handler) GetMonthlyReport(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	month, year, err := parseMonthYearQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	key := handler.reportCache.Key(userID, "monthly-report", strconv.Itoa(year), strconv.Itoa(month))
	report, err := cache.Load(handler.reportCache, key, func() (services.MonthlyReport, error) {
		return handler.reportService.MonthlyReport(userID, month, year)
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(report)
}

func (handler *Handler) GetCycleSummary(c *fiber.Ctx) error {
	summary, err := handler.reportService.CycleSummary(c.Params("cycleId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) GetSymptomFrequency(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	dateRange, err := parseRequiredRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := handler.reportService.SymptomFrequency(userID, dateRange)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(report)
}

func (handler *Handler) GetFlowPattern(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	dateRange, err := parseRequiredRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	points, err := handler.reportService.FlowPattern(userID, dateRange)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(points)
}
