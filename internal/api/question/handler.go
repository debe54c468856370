package question

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
	usecase QuestionUsecase
}

func NewHandler(usecase QuestionUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// List handles GET /api/questions?category=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListQuestions")

	category := r.URL.Query().Get("category")
	if category == "" {
		response.Error(ctx, w, http.StatusBadRequest, "Category is required", nil)
		return
	}

	questions, err := h.usecase.List(ctx, category)
	if err != nil {
		response.FromError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "questions listed", zap.String("category", category), zap.Int("count", len(questions)))
	response.Success(w, questions)
}

// Generate handles POST /api/questions?category=
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateQuestions")

	category := r.URL.Query().Get("category")
	if category == "" {
		response.Error(ctx, w, http.StatusBadRequest, "Category is required", nil)
		return
	}

	var req entity.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	req.Category = category

	resp, err := h.usecase.Generate(ctx, &req)
	if err != nil {
		response.FromError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// Get handles GET /api/questions/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("question_id", id),
		zap.String("action", "GetQuestion"),
	)

	q, err := h.usecase.Get(ctx, id)
	if err != nil {
		response.FromError(ctx, w, err)
		return
	}

	response.Success(w, q)
}

// Review handles PATCH /api/questions/{id}
func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("question_id", id),
		zap.String("action", "ReviewQuestion"),
	)

	var patch entity.QuestionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	q, err := h.usecase.Review(ctx, id, &patch)
	if err != nil {
		response.FromError(ctx, w, err)
		return
	}

	response.Success(w, q)
}

// Delete handles DELETE /api/questions/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("question_id", id),
		zap.String("action", "DeleteQuestion"),
	)

	if err := h.usecase.Delete(ctx, id); err != nil {
		response.FromError(ctx, w, err)
		return
	}

	response.Success(w, entity.SuccessResponse{Success: true})
}

// Export handles GET /api/questions/export?category=&format=
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportQuestions")

	format := entity.ResultFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}

	result, err := h.usecase.Export(ctx, &entity.ExportRequest{
		Category: r.URL.Query().Get("category"),
		Format:   format,
	})
	if err != nil {
		response.FromError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "export ready",
		zap.String("filename", result.Filename),
		zap.Int("bytes", len(result.Content)),
	)
	response.Attachment(w, result.Filename, result.ContentType, result.Content)
}
