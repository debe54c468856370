package auth

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/api/middleware"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/logger"
	"github.com/umstad/quizgen/internal/pkg/response"
)

type Handler struct {
	usecase AuthUsecase
	cfg     config.AuthConfig
}

func NewHandler(usecase AuthUsecase, cfg config.AuthConfig) *Handler {
	return &Handler{
		usecase: usecase,
		cfg:     cfg,
	}
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Login")

	var req entity.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.usecase.Login(ctx, req.Password); err != nil {
		response.FromError(ctx, w, err)
		return
	}

	http.SetCookie(w, h.cookie(middleware.AuthCookieValue, int(h.cfg.CookieMaxAge.Seconds())))

	ctxzap.Info(ctx, "session started")
	response.Success(w, entity.SuccessResponse{Success: true})
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Logout")

	http.SetCookie(w, h.cookie("", -1))

	ctxzap.Info(ctx, "session ended")
	response.Success(w, entity.SuccessResponse{Success: true})
}

func (h *Handler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}
