package api

import (
	"errors"

	"github.com/avoronin9/ironlog/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is logged with full detail and answered
// with a generic 500 so internals never leak to clients.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return apiError(c, fiber.StatusBadRequest, validationErr.Message)
	}
	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return apiError(c, fiber.StatusNotFound, notFoundErr.Message)
	}
	var authErr *services.AuthError
	if errors.As(err, &authErr) {
		return apiError(c, fiber.StatusUnauthorized, authErr.Message)
	}

	handler.log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")
	return apiError(c, fiber.StatusInternalServerError, "Internal server error")
}
