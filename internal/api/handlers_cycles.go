package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesight/internal/cache"
	"github.com/terraincognita07/cyclesight/internal/logger"
	"github.com/terraincognita07/cyclesight/internal/models"
	"github.com/terraincognita07/cyclesight/internal/services"
)

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	input := cycleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	cycle, err := input.toModel()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.cycleService.Create(&cycle); err != nil {
		return respondServiceError(c, err)
	}
	handler.reportCache.Invalidate(cycle.UserID)

	logger.Get().WithField("cycle_id", cycle.ID).Debug("cycle created")
	return c.Status(fiber.StatusCreated).JSON(cycle)
}

// ListCycles lists the user's cycles, or every cycle when userId is omitted.
func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	var (
		cycles []models.Cycle
		err    error
	)
	if userID := strings.TrimSpace(c.Query("userId")); userID != "" {
		cycles, err = handler.cycleService.ListForUser(userID)
	} else {
		cycles, err = handler.cycleService.ListAll()
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(cycles)
}

func (handler *Handler) GetCurrentCycle(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	cycle, err := handler.cycleService.Current(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if cycle == nil {
		return c.JSON(nil)
	}
	return c.JSON(cycle)
}

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	month, year, err := parseMonthYearQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	key := handler.reportCache.Key(userID, "calendar", strconv.Itoa(year), strconv.Itoa(month))
	calendar, err := cache.Load(handler.reportCache, key, func() (services.CalendarData, error) {
		return handler.cycleService.Calendar(userID, month, year)
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(calendar)
}

func (handler *Handler) GetNextPeriod(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	nextPeriod, err := handler.cycleService.PredictNextPeriodForUser(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"nextPeriod": nextPeriod})
}

func (handler *Handler) GetCycle(c *fiber.Ctx) error {
	cycle, err := handler.cycleService.Find(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(cycle)
}

func (handler *Handler) GetCyclePredictions(c *fiber.Ctx) error {
	predictions, err := handler.cycleService.Predictions(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(predictions)
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	input := cycleUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	update, err := input.toUpdate()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	cycle, err := handler.cycleService.Update(c.Params("id"), update)
	if err != nil {
		return respondServiceError(c, err)
	}
	handler.reportCache.Invalidate(cycle.UserID)
	return c.JSON(cycle)
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	cycleID := c.Params("id")
	cycle, err := handler.cycleService.Find(cycleID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.cycleService.Delete(cycleID); err != nil {
		return respondServiceError(c, err)
	}
	handler.reportCache.Invalidate(cycle.UserID)
	return c.SendStatus(fiber.StatusNoContent)
}
