package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesight/internal/models"
	"github.com/terraincognita07/cyclesight/internal/services"
)

func (handler *Handler) CreateTip(c *fiber.Ctx) error {
	input := tipInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	tip := input.toModel()
	if err := handler.tipService.Create(&tip); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tip)
}

// ListTips accepts an optional cycleDay or phase filter; cycleDay wins when
// both are given.
func (handler *Handler) ListTips(c *fiber.Ctx) error {
	var (
		tips []models.Tip
		err  error
	)
	switch {
	case strings.TrimSpace(c.Query("cycleDay")) != "":
		cycleDay, parseErr := parseCycleDay(c.Query("cycleDay"))
		if parseErr != nil {
			return respondServiceError(c, parseErr)
		}
		tips, err = handler.tipService.ForCycleDay(cycleDay)
	case strings.TrimSpace(c.Query("phase")) != "":
		phase := c.Query("phase")
		tips, err = handler.tipService.ForPhase(*parseCyclePhase(&phase))
	default:
		tips, err = handler.tipService.List()
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tips)
}

func (handler *Handler) ListTipsForCycleDay(c *fiber.Ctx) error {
	cycleDay, err := parseCycleDay(c.Params("day"))
	if err != nil {
		return respondServiceError(c, err)
	}
	tips, err := handler.tipService.ForCycleDay(cycleDay)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tips)
}

func (handler *Handler) ListTipsForPhase(c *fiber.Ctx) error {
	phase := models.CyclePhase(strings.ToLower(strings.TrimSpace(c.Params("phase"))))
	tips, err := handler.tipService.ForPhase(phase)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tips)
}

func (handler *Handler) GetCurrentTips(c *fiber.Ctx) error {
	userID, err := requiredQuery(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	current, err := handler.tipService.Current(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(current)
}

func (handler *Handler) GetTip(c *fiber.Ctx) error {
	tip, err := handler.tipService.Find(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tip)
}

func (handler *Handler) UpdateTip(c *fiber.Ctx) error {
	input := tipUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	tip, err := handler.tipService.Update(c.Params("id"), input.toUpdate())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tip)
}

func (handler *Handler) DeleteTip(c *fiber.Ctx) error {
	if err := handler.tipService.Delete(c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseCycleDay(raw string) (int, error) {
	cycleDay, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || cycleDay < 1 {
		return 0, services.ErrInvalidCycleDay
	}
	return cycleDay, nil
}
