package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListPublicExercises(c *fiber.Ctx) error {
	exercises, err := handler.publicExercises.List()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"exercises": exercises})
}

func (handler *Handler) GetPublicExercise(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusNotFound, "Public exercise not found")
	}

	exercise, err := handler.publicExercises.Get(uint(id))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"exercise": exercise})
}
