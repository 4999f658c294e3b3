package api

import (
	"github.com/avoronin9/ironlog/internal/config"
	"github.com/avoronin9/ironlog/internal/db"
	"github.com/avoronin9/ironlog/internal/logger"
	"github.com/avoronin9/ironlog/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey    []byte
	cookieSecure bool
	log          *logger.Logger
	resetLimiter *attemptLimiter

	repositories    *db.Repositories
	authService     *services.AuthService
	exerciseService *services.ExerciseService
	workoutLogs     *services.WorkoutLogService
	publicExercises *services.PublicExerciseService
	reportService   *services.ReportService
}

func NewHandler(database *gorm.DB, cfg config.Config, mailer services.Mailer, log *logger.Logger) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:       []byte(cfg.SecretKey),
		cookieSecure:    cfg.CookieSecure,
		log:             log,
		resetLimiter:    newAttemptLimiter(),
		repositories:    repositories,
		authService:     services.NewAuthService(repositories.Users, cfg.TOTPIssuer),
		exerciseService: services.NewExerciseService(repositories.Exercises),
		workoutLogs:     services.NewWorkoutLogService(repositories.WorkoutLogs, repositories.Exercises),
		publicExercises: services.NewPublicExerciseService(repositories.PublicExercises),
		reportService:   services.NewReportService(repositories.WorkoutLogs, repositories.Users, mailer, log),
	}
}
