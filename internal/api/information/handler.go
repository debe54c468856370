package information

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/logger"
	"github.com/umstad/quizgen/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	usecase InformationUsecase
}

func NewHandler(usecase InformationUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// List handles GET /api/informations?category=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListInformations")
	category := r.URL.Query().Get("category")

	infos, err := h.usecase.List(ctx, category)
	if err != nil {
		response.FromError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "informations listed", zap.String("category", category), zap.Int("count", len(infos)))
	response.Success(w, infos)
}

// Create handles POST /api/informations
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateInformation")

	var req entity.CreateInformationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	info, err := h.usecase.Create(ctx, &req)
	if err != nil {
		response.FromError(ctx, w, err)
		return
	}

	response.Created(w, info)
}

// Get handles GET /api/informations/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("information_id", id),
		zap.String("action", "GetInformation"),
	)

	info, err := h.usecase.Get(ctx, id)
	if err != nil {
		response.FromError(ctx, w, err)
		return
	}

	response.Success(w, info)
}

// Update handles PUT /api/informations
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UpdateInformation")

	var req entity.UpdateInformationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	info, err := h.usecase.Update(ctx, &req)
	if err != nil {
		response.FromError(ctx, w, err)
		return
	}

	response.Success(w, info)
}

// Delete handles DELETE /api/informations/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("information_id", id),
		zap.String("action", "DeleteInformation"),
	)

	if err := h.usecase.Delete(ctx, id); err != nil {
		response.FromError(ctx, w, err)
		return
	}

	response.Success(w, entity.SuccessResponse{Success: true})
}
