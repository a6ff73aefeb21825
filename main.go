// main.go
package main

import (
	"context"
	"log"

	"movie-diary/cmd"
	"movie-diary/internal/data/repository"
	"movie-diary/internal/metadata"
	"movie-diary/internal/wire"
	"movie-diary/pkg/database"
	"movie-diary/pkg/utils"

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

	// Bring schema up to date, safe to re-run on every boot
	if err := repository.Migrate(context.Background(), db, logger); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Metadata lookup client
	tmdb := metadata.NewTMDBClient(config.TMDB, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, tmdb, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
