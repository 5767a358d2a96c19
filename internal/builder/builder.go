package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/api"
	challengeapi "github.com/crowdlaunch/challenge-backend/internal/api/challenge"
	copilotapi "github.com/crowdlaunch/challenge-backend/internal/api/copilot"
	helpapi "github.com/crowdlaunch/challenge-backend/internal/api/help"
	"github.com/crowdlaunch/challenge-backend/internal/config"
	"github.com/crowdlaunch/challenge-backend/internal/integration/model"
	"github.com/crowdlaunch/challenge-backend/internal/integration/telegram"
	"github.com/crowdlaunch/challenge-backend/internal/repository"
	"github.com/crowdlaunch/challenge-backend/internal/usecase/challenge"
	"github.com/crowdlaunch/challenge-backend/internal/usecase/copilot"
	"github.com/crowdlaunch/challenge-backend/internal/usecase/help"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run migrations and load seed fixtures
	if err := initDatabase(ctx, db, cfg, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Initialize repositories
	challengeRepo := repository.NewChallengePostgres(db)
	helpRepo := repository.NewHelpRequestPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var modelConnector copilot.ModelConnector
	if cfg.EnableMocks {
		logger.Info("Using mock connector for the model service")
		modelConnector = model.NewMockConnector(logger)
	} else {
		logger.Info("Using real connector for the model service")
		modelConnector = model.NewConnector(cfg.ModelConnectorCfg, logger)
	}

	// Telegram notifier is optional; without a token it is a no-op
	notifier, err := telegram.NewNotifier(cfg.TelegramCfg, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize telegram notifier: %w", err)
	}

	// Initialize use cases
	challengeUC := challenge.NewUsecase(challengeRepo, logger)
	helpUC := help.NewUsecase(helpRepo, notifier, logger)
	copilotUC := copilot.NewUsecase(modelConnector, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	challengeHandler := challengeapi.NewHandler(challengeUC)
	helpHandler := helpapi.NewHandler(helpUC)
	copilotHandler := copilotapi.NewHandler(copilotUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(challengeHandler, helpHandler, copilotHandler, cfg.CORSAllowedOrigin, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
