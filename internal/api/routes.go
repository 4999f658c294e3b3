package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/totp/setup", handler.AuthRequired, handler.SetupTOTP)
	auth.Post("/totp/verify", handler.AuthRequired, handler.VerifyTOTP)

	exercises := app.Group("/exercises", handler.AuthRequired)
	exercises.Get("", handler.ListExercises)
	exercises.Post("", handler.CreateExercise)
	exercises.Get("/:id", handler.GetExercise)
	exercises.Put("/:id", handler.UpdateExercise)
	exercises.Delete("/:id", handler.DeleteExercise)
	exercises.Get("/:id/progress", handler.ExerciseProgress)

	logs := app.Group("/workout-logs", handler.AuthRequired)
	logs.Get("", handler.ListWorkoutLogs)
	logs.Post("", handler.CreateWorkoutLog)
	logs.Get("/exercise/:id/last", handler.LastWorkoutLog)
	logs.Get("/:id", handler.GetWorkoutLog)
	logs.Put("/:id", handler.UpdateWorkoutLog)
	logs.Delete("/:id", handler.DeleteWorkoutLog)

	catalog := app.Group("/public-exercises", handler.AuthRequired)
	catalog.Get("", handler.ListPublicExercises)
	catalog.Get("/:id", handler.GetPublicExercise)

	reports := app.Group("/reports", handler.AuthRequired)
	reports.Post("/weekly", handler.SendWeeklyReport)
}
