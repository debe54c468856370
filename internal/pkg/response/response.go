package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/entity"
	"go.uber.org/zap"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Can't change response at this point
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// Error logs err and writes an {error, message} body.
func Error(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	fields := []zap.Field{zap.Int("status", status)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	if status >= http.StatusInternalServerError {
		ctxzap.Error(ctx, message, fields...)
	} else {
		ctxzap.Warn(ctx, message, fields...)
	}

	body := entity.ErrorResponse{Error: message}
	if err != nil && status < http.StatusInternalServerError {
		body.Message = err.Error()
	}
	JSON(w, status, body)
}

// Success writes a success response
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created writes a 201 Created response
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Attachment writes a downloadable file.
func Attachment(w http.ResponseWriter, filename, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

// FromError maps domain errors onto HTTP statuses.
func FromError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrInformationNotFound), errors.Is(err, entity.ErrQuestionNotFound):
		Error(ctx, w, http.StatusNotFound, "Not found", err)
	case errors.Is(err, entity.ErrUnauthorized), errors.Is(err, entity.ErrInvalidPassword):
		Error(ctx, w, http.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, entity.ErrPasswordRequired),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrInvalidCategory),
		errors.Is(err, entity.ErrInvalidFormat),
		errors.Is(err, entity.ErrNoContexts),
		errors.Is(err, entity.ErrTooManyContexts),
		errors.Is(err, entity.ErrEmptyText),
		errors.Is(err, entity.ErrInvalidQuestions):
		Error(ctx, w, http.StatusBadRequest, "Bad request", err)
	case errors.Is(err, context.DeadlineExceeded):
		Error(ctx, w, http.StatusGatewayTimeout, "Generation timed out", err)
	default:
		Error(ctx, w, http.StatusInternalServerError, "Internal server error", err)
	}
}
