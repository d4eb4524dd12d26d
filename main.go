package main

import (
	"github.com/wfunc/quizpoker/config"
	"github.com/wfunc/quizpoker/logger"
	"github.com/wfunc/quizpoker/persistence"
	"github.com/wfunc/quizpoker/server"
)

func main() {
	// Initialize logger
	logger.Init()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Round history is optional; the game is fully playable in-memory.
	var db persistence.Database
	if cfg.Database.Postgres.Enabled {
		db, err = persistence.NewGormPostgreSQL(
			cfg.Database.Postgres.Host,
			cfg.Database.Postgres.Port,
			cfg.Database.Postgres.User,
			cfg.Database.Postgres.Password,
			cfg.Database.Postgres.DBName,
		)
		if err != nil {
			logger.Log.Fatalf("Failed to connect to database: %v", err)
		}
		logger.Log.Info("Database connection successful.")
	} else {
		logger.Log.Info("Round history persistence disabled; running in-memory only.")
	}

	// Initialize Game Server
	gameServer := server.NewGameServer(cfg, db)

	// Start Server
	logger.Log.Infof("Starting quizpoker server on %s", cfg.Server.HTTPAddress)
	if err := gameServer.Start(); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
