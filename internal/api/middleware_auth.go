package api

import (
	"github.com/avoronin9/ironlog/internal/models"
	"github.com/gofiber/fiber/v2"
)

const contextUserKey = "currentUser"

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}

func currentUserID(c *fiber.Ctx) uint {
	if user := currentUser(c); user != nil {
		return user.ID
	}
	return 0
}
