package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) SetupTOTP(c *fiber.Ctx) error {
	setup, err := handler.authService.SetupTOTP(currentUserID(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(setup)
}

func (handler *Handler) VerifyTOTP(c *fiber.Ctx) error {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	backupCodes, err := handler.authService.VerifyTOTP(currentUserID(c), input.Code)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Two-factor authentication enabled",
		"backup_codes": backupCodes,
	})
}
