package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umstad/quizgen/internal/entity"
)

func intPtr(i int) *int { return &i }

func TestValidateCategory(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateCategory("anadolu_selcuklu"))
	assert.ErrorIs(t, v.ValidateCategory(""), entity.ErrMissingField)
	assert.ErrorIs(t, v.ValidateCategory("roma"), entity.ErrInvalidCategory)
}

func TestValidateCreateInformation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateCreateInformation(&entity.CreateInformationRequest{Text: "bilgi", Category: "ilk_cag"}))
	assert.ErrorIs(t, v.ValidateCreateInformation(&entity.CreateInformationRequest{Text: " ", Category: "ilk_cag"}), entity.ErrMissingField)
}

func TestValidateUpdateInformation(t *testing.T) {
	v := NewValidator()

	assert.ErrorIs(t, v.ValidateUpdateInformation(&entity.UpdateInformationRequest{Text: "x", Category: "ilk_cag"}), entity.ErrMissingField)
	assert.NoError(t, v.ValidateUpdateInformation(&entity.UpdateInformationRequest{ID: "1", Text: "x", Category: "ilk_cag"}))
}

func TestValidateGenerateQuestions(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  entity.GenerateQuestionsRequest
		err  error
	}{
		{name: "ok", req: entity.GenerateQuestionsRequest{Category: "turk_islam", Contexts: []string{"a"}}},
		{name: "no contexts", req: entity.GenerateQuestionsRequest{Category: "turk_islam"}, err: entity.ErrNoContexts},
		{name: "too many", req: entity.GenerateQuestionsRequest{Category: "turk_islam", Contexts: make([]string, 6)}, err: entity.ErrTooManyContexts},
		{name: "bad category", req: entity.GenerateQuestionsRequest{Category: "x", Contexts: []string{"a"}}, err: entity.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateGenerateQuestions(&tt.req)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidateQuestionPatch(t *testing.T) {
	v := NewValidator()

	assert.ErrorIs(t, v.ValidateQuestionPatch(&entity.QuestionPatch{}), entity.ErrMissingField)

	four := []string{"a", "b", "c", "d"}
	assert.ErrorIs(t, v.ValidateQuestionPatch(&entity.QuestionPatch{PreferredAnswers: &four}), entity.ErrInvalidParameter)
	assert.ErrorIs(t, v.ValidateQuestionPatch(&entity.QuestionPatch{PreferredCorrectAnswer: intPtr(5)}), entity.ErrInvalidParameter)

	assert.NoError(t, v.ValidateQuestionPatch(&entity.QuestionPatch{PreferredCorrectAnswer: intPtr(entity.NoAnswer)}))
	assert.NoError(t, v.ValidateQuestionPatch(&entity.QuestionPatch{PreferredCorrectAnswer: intPtr(4)}))
}

func TestValidateExport(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateExport(&entity.ExportRequest{Category: "ilk_cag", Format: entity.FormatPDF}))
	assert.ErrorIs(t, v.ValidateExport(&entity.ExportRequest{Category: "ilk_cag", Format: "html"}), entity.ErrInvalidFormat)
}
