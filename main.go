package main

import (
	"context"
	"log"
	"time"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/notifier"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Connect the lifecycle event publisher. Events are best-effort: when
	// redis is unreachable the engine still serves bookings.
	events, err := notifier.NewRedisPublisher(config.Redis, logger)
	if err != nil {
		logger.Warn("Event publisher unavailable, lifecycle events disabled", zap.Error(err))
		events = notifier.NopPublisher{}
	}
	defer events.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Sweep long-expired sessions in the background
	go cleanSessionsLoop(repos, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, events, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func cleanSessionsLoop(repos *repository.Repository, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := repos.Session.CleanExpiredSessions(context.Background()); err != nil {
			logger.Warn("Failed to clean expired sessions", zap.Error(err))
		}
	}
}
