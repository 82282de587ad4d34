package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesight/internal/models"
)

func (handler *Handler) CreateDailyLog(c *fiber.Ctx) error {
	input := dailyLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	entry, err := input.toModel()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.dailyLogService.Create(&entry); err != nil {
		return respondServiceError(c, err)
	}
	handler.reportCache.Invalidate(entry.UserID)
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListDailyLogs(c *fiber.Ctx) error {
	var (
		logs []models.DailyLog
		err  error
	)
	if userID := strings.TrimSpace(c.Query("userId")); userID != "" {
		logs, err = handler.dailyLogService.ListForUser(userID)
	} else {
		logs, err = handler.dailyLogService.ListAll()
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

func (handler *Handler) ListDailyLogsInRange(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	dateRange, err := parseRequiredRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	logs, err := handler.dailyLogService.ListInRange(userID, dateRange)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

func (handler *Handler) GetTrends(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	dateRange, err := parseOptionalRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := handler.trendService.Trends(userID, dateRange)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(report)
}

func (handler *Handler) GetMostFrequentSymptom(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	dateRange, err := parseOptionalRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	symptom, err := handler.trendService.MostFrequentSymptom(userID, dateRange)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"mostFrequentSymptom": symptom})
}

func (handler *Handler) GetDailyLog(c *fiber.Ctx) error {
	entry, err := handler.dailyLogService.Find(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) UpdateDailyLog(c *fiber.Ctx) error {
	input := dailyLogUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	update, err := input.toUpdate()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.dailyLogService.Update(c.Params("id"), update)
	if err != nil {
		return respondServiceError(c, err)
	}
	handler.reportCache.Invalidate(entry.UserID)
	return c.JSON(entry)
}

func (handler *Handler) DeleteDailyLog(c *fiber.Ctx) error {
	logID := c.Params("id")
	entry, err := handler.dailyLogService.Find(logID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.dailyLogService.Delete(logID); err != nil {
		return respondServiceError(c, err)
	}
	handler.reportCache.Invalidate(entry.UserID)
	return c.SendStatus(fiber.StatusNoContent)
}
