package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingStats_DefaultRates(t *testing.T) {
	stats := DefaultPricing().Stats(TokenUsage{InputTokens: 1_000_000, OutputTokens: 1_000_000})

	assert.InDelta(t, 0.15, stats.CostInput, 1e-12)
	assert.InDelta(t, 0.60, stats.CostOutput, 1e-12)
	assert.InDelta(t, 0.75, stats.TotalCost, 1e-12)
	assert.Equal(t, 1_000_000, stats.InputTokens)
	assert.Equal(t, 1_000_000, stats.OutputTokens)
}

func TestPricingStats_CustomRates(t *testing.T) {
	p := Pricing{InputPerMillion: 2.5, OutputPerMillion: 10}
	stats := p.Stats(TokenUsage{InputTokens: 2_000, OutputTokens: 500})

	assert.InDelta(t, 0.005, stats.CostInput, 1e-12)
	assert.InDelta(t, 0.005, stats.CostOutput, 1e-12)
	assert.InDelta(t, 0.01, stats.TotalCost, 1e-12)
}

func TestTokenUsageAdd(t *testing.T) {
	u := TokenUsage{InputTokens: 10, OutputTokens: 3}.Add(TokenUsage{InputTokens: 5, OutputTokens: 7})
	assert.Equal(t, TokenUsage{InputTokens: 15, OutputTokens: 10}, u)
}

func TestGeneratedQuestionValidate(t *testing.T) {
	ok := GeneratedQuestion{Question: "Soru?", CorrectAnswer: "Cevap A"}
	assert.NoError(t, ok.Validate())

	missingAnswer := GeneratedQuestion{Question: "Soru?"}
	assert.True(t, errors.Is(missingAnswer.Validate(), ErrSchemaViolation))

	blankQuestion := GeneratedQuestion{Question: "  ", CorrectAnswer: "Cevap B"}
	assert.True(t, errors.Is(blankQuestion.Validate(), ErrSchemaViolation))
}

func TestStageErrorUnwrap(t *testing.T) {
	err := &StageError{Stage: StageEmbed, Err: ErrEmptyText}
	assert.True(t, errors.Is(err, ErrEmptyText))
	assert.Equal(t, "embed: text is empty", err.Error())
}

func TestEffectiveFields(t *testing.T) {
	q := Question{
		Question:               "orijinal",
		Answers:                []string{"a", "b", "c", "d", "e"},
		CorrectAnswer:          2,
		PreferredCorrectAnswer: NoAnswer,
	}
	assert.Equal(t, "orijinal", q.EffectiveQuestion())
	assert.Equal(t, q.Answers, q.EffectiveAnswers())
	assert.Equal(t, 2, q.EffectiveCorrectAnswer())

	q.PreferredQuestion = "tercih"
	q.PreferredAnswers = []string{"1", "2", "3", "4", "5"}
	q.PreferredCorrectAnswer = 4
	assert.Equal(t, "tercih", q.EffectiveQuestion())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, q.EffectiveAnswers())
	assert.Equal(t, 4, q.EffectiveCorrectAnswer())
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("anadolu_selcuklu"))
	assert.False(t, IsValidCategory("roma"))
	assert.Equal(t, "Osmanlı Kuruluş", TopicName("beylikten_devlete"))
	assert.Equal(t, "roma", TopicName("roma"))
}
