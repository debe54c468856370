package auth

import (
	"context"
	"crypto/subtle"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/entity"
	"go.uber.org/zap"
)

// AuthUsecase checks the shared access password.
type AuthUsecase struct {
	password string
	logger   *zap.Logger
}

func NewUsecase(cfg config.AuthConfig, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{
		password: cfg.Password,
		logger:   logger,
	}
}

func (uc *AuthUsecase) Login(ctx context.Context, password string) error {
	if password == "" {
		return entity.ErrPasswordRequired
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(uc.password)) != 1 {
		ctxzap.Warn(ctx, "login rejected")
		return entity.ErrInvalidPassword
	}

	ctxzap.Info(ctx, "login accepted")
	return nil
}
