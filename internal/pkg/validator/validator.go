package validator

import (
	"fmt"
	"strings"

	"github.com/umstad/quizgen/internal/entity"
)

// Validator checks incoming requests before they reach the use cases.
type Validator struct {
	maxContexts int
}

func NewValidator() *Validator {
	return &Validator{maxContexts: entity.MaxContextsPerRequest}
}

// ValidateCategory rejects empty and unknown categories.
func (v *Validator) ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("%w: category", entity.ErrMissingField)
	}
	if !entity.IsValidCategory(category) {
		return fmt.Errorf("%w: %s", entity.ErrInvalidCategory, category)
	}
	return nil
}

func (v *Validator) ValidateCreateInformation(req *entity.CreateInformationRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: text", entity.ErrMissingField)
	}
	return v.ValidateCategory(req.Category)
}

func (v *Validator) ValidateUpdateInformation(req *entity.UpdateInformationRequest) error {
	if req.ID == "" {
		return fmt.Errorf("%w: id", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: text", entity.ErrMissingField)
	}
	return v.ValidateCategory(req.Category)
}

// ValidateGenerateQuestions expects a normalized request.
func (v *Validator) ValidateGenerateQuestions(req *entity.GenerateQuestionsRequest) error {
	if err := v.ValidateCategory(req.Category); err != nil {
		return err
	}
	if len(req.Contexts) == 0 {
		return entity.ErrNoContexts
	}
	if len(req.Contexts) > v.maxContexts {
		return fmt.Errorf("%w: maximum %d allowed, got %d", entity.ErrTooManyContexts, v.maxContexts, len(req.Contexts))
	}
	return nil
}

// ValidateQuestionPatch checks the reviewer-editable fields.
func (v *Validator) ValidateQuestionPatch(patch *entity.QuestionPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: nothing to update", entity.ErrMissingField)
	}

	if patch.PreferredAnswers != nil && len(*patch.PreferredAnswers) != entity.AnswerCount {
		return fmt.Errorf("%w: preferredAnswers must have %d options, got %d",
			entity.ErrInvalidParameter, entity.AnswerCount, len(*patch.PreferredAnswers))
	}

	if patch.PreferredCorrectAnswer != nil {
		idx := *patch.PreferredCorrectAnswer
		if idx != entity.NoAnswer && (idx < 0 || idx >= entity.AnswerCount) {
			return fmt.Errorf("%w: preferredCorrectAnswer must be between -1 and %d, got %d",
				entity.ErrInvalidParameter, entity.AnswerCount-1, idx)
		}
	}

	return nil
}

func (v *Validator) ValidateExport(req *entity.ExportRequest) error {
	if err := v.ValidateCategory(req.Category); err != nil {
		return err
	}
	if !req.Format.IsValid() {
		return fmt.Errorf("%w: %s", entity.ErrInvalidFormat, req.Format)
	}
	return nil
}
