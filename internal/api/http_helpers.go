package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesight/internal/logger"
	"github.com/terraincognita07/cyclesight/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "not found")
}

// respondServiceError maps service sentinels onto HTTP statuses. Anything
// unrecognized is logged and reported as an internal error.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCycleNotFound),
		errors.Is(err, services.ErrDailyLogNotFound),
		errors.Is(err, services.ErrTipNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidMonth),
		errors.Is(err, services.ErrInvalidCycleLength),
		errors.Is(err, services.ErrInvalidFlowIntensity),
		errors.Is(err, services.ErrUserIDRequired),
		errors.Is(err, services.ErrDateRequired),
		errors.Is(err, services.ErrStartDateInvalid),
		errors.Is(err, services.ErrEndDateInvalid),
		errors.Is(err, services.ErrDateRangeIncomplete),
		errors.Is(err, services.ErrTipTitleRequired),
		errors.Is(err, services.ErrTipContentRequired),
		errors.Is(err, services.ErrInvalidCycleDay),
		errors.Is(err, services.ErrInvalidCyclePhase):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	logger.Get().WithError(err).WithField("path", c.Path()).Error("request failed")
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

func requiredQuery(c *fiber.Ctx, key string) (string, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return "", errors.New(key + " query parameter is required")
	}
	return value, nil
}

func parseMonthYearQuery(c *fiber.Ctx) (int, int, error) {
	rawMonth, err := requiredQuery(c, "month")
	if err != nil {
		return 0, 0, err
	}
	rawYear, err := requiredQuery(c, "year")
	if err != nil {
		return 0, 0, err
	}

	month, err := strconv.Atoi(rawMonth)
	if err != nil {
		return 0, 0, services.ErrInvalidMonth
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return 0, 0, errors.New("invalid year")
	}
	return month, year, nil
}

func parseOptionalRangeQuery(c *fiber.Ctx) (*services.DateRange, error) {
	return services.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
}

func parseRequiredRangeQuery(c *fiber.Ctx) (services.DateRange, error) {
	dateRange, err := parseOptionalRangeQuery(c)
	if err != nil {
		return services.DateRange{}, err
	}
	if dateRange == nil {
		return services.DateRange{}, services.ErrDateRangeIncomplete
	}
	return *dateRange, nil
}
