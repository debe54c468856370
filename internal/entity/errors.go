package entity

import "errors"

// Domain errors
var (
	// Information errors
	ErrInformationNotFound = errors.New("information not found")

	// Question errors
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoContexts       = errors.New("no contexts selected")
	ErrTooManyContexts  = errors.New("too many contexts selected")

	// Auth errors
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidPassword  = errors.New("invalid password")

	// Generation errors
	ErrEmptyText        = errors.New("text is empty")
	ErrSchemaViolation  = errors.New("generated output does not match the question schema")
	ErrNoChoices        = errors.New("completion returned no choices")
	ErrEmptyEmbedding   = errors.New("embedding service returned no vector")
	ErrInvalidQuestions = errors.New("number of questions must be positive")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidCategory  = errors.New("unknown category")
)
