package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avoronin9/ironlog/internal/api"
	"github.com/avoronin9/ironlog/internal/config"
	"github.com/avoronin9/ironlog/internal/db"
	"github.com/avoronin9/ironlog/internal/logger"
	"github.com/avoronin9/ironlog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := logger.New("ironlog")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration load failed")
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	var mailer services.Mailer
	if cfg.Mailgun.Enabled() {
		mailer = services.NewMailgunMailer(cfg.Mailgun)
	} else {
		log.Warn().Msg("mailgun credentials missing, weekly report mail disabled")
	}

	handler := api.NewHandler(database, cfg, mailer, log)

	app := fiber.New(fiber.Config{
		AppName:               "IronLog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	if mailer != nil {
		repositories := db.NewRepositories(database)
		reports := services.NewReportService(repositories.WorkoutLogs, repositories.Users, mailer, logger.New("reports"))
		services.NewReportScheduler(reports, logger.New("scheduler")).Start(lifecycleCtx)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
