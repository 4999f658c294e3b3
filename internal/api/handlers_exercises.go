package api

import (
	"github.com/avoronin9/ironlog/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListExercises(c *fiber.Ctx) error {
	exercises, err := handler.exerciseService.List(currentUserID(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"exercises": exercises})
}

func (handler *Handler) GetExercise(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusNotFound, "Exercise not found")
	}

	exercise, err := handler.exerciseService.Get(uint(id), currentUserID(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"exercise": exercise})
}

func (handler *Handler) CreateExercise(c *fiber.Ctx) error {
	var input services.ExerciseInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	exercise, err := handler.exerciseService.Create(currentUserID(c), input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"exercise": exercise})
}

func (handler *Handler) UpdateExercise(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusNotFound, "Exercise not found")
	}

	var patch services.ExercisePatch
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	exercise, err := handler.exerciseService.Update(uint(id), currentUserID(c), patch)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"exercise": exercise})
}

func (handler *Handler) DeleteExercise(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusNotFound, "Exercise not found")
	}

	if err := handler.exerciseService.Delete(uint(id), currentUserID(c)); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exercise deleted successfully"})
}

// ExerciseProgress returns every log for one exercise in chronological
// order, oldest first, ready for charting.
func (handler *Handler) ExerciseProgress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusNotFound, "Exercise not found")
	}

	logs, err := handler.workoutLogs.Progress(currentUserID(c), uint(id))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"progress": logs})
}
