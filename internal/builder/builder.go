package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/umstad/quizgen/internal/api"
	authapi "github.com/umstad/quizgen/internal/api/auth"
	informationapi "github.com/umstad/quizgen/internal/api/information"
	questionapi "github.com/umstad/quizgen/internal/api/question"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/pkg/formatter"
	"github.com/umstad/quizgen/internal/pkg/validator"
	"github.com/umstad/quizgen/internal/repository"
	"github.com/umstad/quizgen/internal/usecase/auth"
	"github.com/umstad/quizgen/internal/usecase/information"
	"github.com/umstad/quizgen/internal/usecase/question"
	"go.uber.org/zap"
)

// Slack on top of the generation deadline so the handler can still answer.
const generateResponseSlack = 30 * time.Second

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	db, err := setupMigratedDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	infoRepo := repository.NewInformationPostgres(db)
	questionRepo := repository.NewQuestionPostgres(db)
	logger.Info("Repositories initialized")

	pipeline, err := newPipeline(cfg, db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	v := validator.NewValidator()

	// Initialize use cases
	authUC := auth.NewUsecase(cfg.AuthCfg, logger)
	infoUC := information.NewUsecase(infoRepo, v, logger)
	questionUC := question.NewUsecase(questionRepo, pipeline.Generation, v, formatter.NewFactory(), logger)
	logger.Info("Use cases initialized")

	generateTimeout := cfg.GenerationCfg.BatchTimeout + generateResponseSlack

	router := api.SetupRouter(api.Handlers{
		Auth:        authapi.NewHandler(authUC, cfg.AuthCfg),
		Information: informationapi.NewHandler(infoUC),
		Question:    questionapi.NewHandler(questionUC),
	}, api.RouterConfig{
		AuthCookieName:  cfg.AuthCfg.CookieName,
		GenerateTimeout: generateTimeout,
	}, logger)
	logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: generateTimeout + 5*time.Second,
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
