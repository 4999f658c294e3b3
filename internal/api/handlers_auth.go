package api

import (
	"errors"
	"time"

	"github.com/avoronin9/ironlog/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	resetAttemptLimit  = 5
	resetAttemptWindow = 15 * time.Minute
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := handler.authService.Register(input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	if err := handler.setAuthCookie(c, &result.User); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    result.User,
		"recovery": fiber.Map{
			"uuid":   result.RecoveryUUID,
			"secret": result.RecoverySecret,
		},
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := handler.authService.Login(input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if result.RequiresTOTP {
		return c.JSON(fiber.Map{"requiresTOTP": true})
	}

	if err := handler.setAuthCookie(c, &result.User); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": result.User})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"user": currentUser(c)})
}

// ResetPassword exchanges recovery credentials for a new password. Failed
// attempts are rate limited per client address.
func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.resetLimiter.tooManyRecent(limiterKey, time.Now(), resetAttemptLimit, resetAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "Too many attempts, try again later")
	}

	var input services.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := handler.authService.ResetPassword(input)
	if err != nil {
		var authErr *services.AuthError
		if errors.As(err, &authErr) {
			handler.resetLimiter.addFailure(limiterKey, time.Now(), resetAttemptWindow)
		}
		return handler.respondServiceError(c, err)
	}

	handler.resetLimiter.reset(limiterKey)
	return c.JSON(fiber.Map{
		"message": "Password reset successfully",
		"user":    result.User,
		"recovery": fiber.Map{
			"uuid":   result.RecoveryUUID,
			"secret": result.RecoverySecret,
		},
	})
}
