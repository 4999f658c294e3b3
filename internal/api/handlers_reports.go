package api

import (
	"errors"
	"time"

	"github.com/avoronin9/ironlog/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SendWeeklyReport mails the current week's workout summary to the
// requesting user.
func (handler *Handler) SendWeeklyReport(c *fiber.Ctx) error {
	err := handler.reportService.SendWeekly(c.Context(), currentUserID(c), time.Now())
	if err != nil {
		if errors.Is(err, services.ErrMailerNotConfigured) {
			return apiError(c, fiber.StatusInternalServerError, "Email service not configured")
		}
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Weekly report sent successfully"})
}
