package api

import (
	"strconv"
	"strings"

	"github.com/avoronin9/ironlog/internal/db"
	"github.com/avoronin9/ironlog/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListWorkoutLogs(c *fiber.Ctx) error {
	filter, err := parseWorkoutLogFilter(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	logs, err := handler.workoutLogs.List(currentUserID(c), filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (handler *Handler) GetWorkoutLog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusNotFound, "Workout log not found")
	}

	entry, err := handler.workoutLogs.Get(uint(id), currentUserID(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"log": entry})
}

func (handler *Handler) CreateWorkoutLog(c *fiber.Ctx) error {
	var input services.WorkoutLogInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := handler.workoutLogs.Create(currentUserID(c), input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"log": entry})
}

func (handler *Handler) UpdateWorkoutLog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusNotFound, "Workout log not found")
	}

	var patch services.WorkoutLogPatch
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := handler.workoutLogs.Update(uint(id), currentUserID(c), patch)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"log": entry})
}

func (handler *Handler) DeleteWorkoutLog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusNotFound, "Workout log not found")
	}

	if err := handler.workoutLogs.Delete(uint(id), currentUserID(c)); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Workout log deleted successfully"})
}

// LastWorkoutLog returns the newest log for an exercise so the client can
// prefill a new entry. The payload carries null when nothing was logged yet.
func (handler *Handler) LastWorkoutLog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusNotFound, "Exercise not found")
	}

	entry, err := handler.workoutLogs.LastValues(currentUserID(c), uint(id))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"lastLog": entry})
}

func parseWorkoutLogFilter(c *fiber.Ctx) (db.WorkoutLogFilter, error) {
	filter := db.WorkoutLogFilter{}

	if raw := strings.TrimSpace(c.Query("exercise_id")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			return filter, services.NewValidationError("Invalid exercise_id parameter")
		}
		exerciseID := uint(parsed)
		filter.ExerciseID = &exerciseID
	}
	if raw := strings.TrimSpace(c.Query("start_date")); raw != "" {
		filter.StartDate = &raw
	}
	if raw := strings.TrimSpace(c.Query("end_date")); raw != "" {
		filter.EndDate = &raw
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return filter, services.NewValidationError("Invalid limit parameter")
		}
		filter.Limit = &parsed
	}

	return filter, nil
}
