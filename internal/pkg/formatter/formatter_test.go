package formatter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umstad/quizgen/internal/entity"
)

func testSheet() ExamSheet {
	return ExamSheet{
		Title: "Anadolu Selçuklu",
		Questions: []*entity.Question{
			{
				Question:               "Original?",
				Answers:                []string{"a", "b", "c", "d", "e"},
				CorrectAnswer:          0,
				PreferredQuestion:      "Malazgirt Savaşı hangi yıl yapılmıştır?",
				PreferredAnswers:       []string{"1071", "1176", "1243", "1299", "1402"},
				PreferredCorrectAnswer: entity.NoAnswer,
			},
			{
				Question:               "İkinci soru?",
				Answers:                []string{"v", "w", "x", "y", "z"},
				CorrectAnswer:          1,
				PreferredCorrectAnswer: 3,
			},
		},
	}
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	for _, format := range []entity.ResultFormat{entity.FormatMarkdown, entity.FormatDOCX, entity.FormatPDF} {
		fm, err := f.Create(format)
		require.NoError(t, err)
		assert.NotEmpty(t, fm.ContentType())
	}

	_, err := f.Create("html")
	assert.ErrorIs(t, err, entity.ErrInvalidFormat)
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(testSheet())
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "# Anadolu Selçuklu")
	assert.Contains(t, md, "**1.** Malazgirt Savaşı hangi yıl yapılmıştır?")
	assert.Contains(t, md, "- A) 1071")
	assert.Contains(t, md, "**2.** İkinci soru?")
	assert.Contains(t, md, "- B) w")
	assert.Contains(t, md, "1-A 2-D")
	assert.NotContains(t, md, "Original?")
}

func TestMarkdownFormatter_Empty(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(ExamSheet{Title: "Boş"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), answerKeyTitle)
}

func TestPDFFormatter(t *testing.T) {
	out, err := NewPDFFormatter().Format(testSheet())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestOptionLetter(t *testing.T) {
	assert.Equal(t, "A", OptionLetter(0))
	assert.Equal(t, "E", OptionLetter(4))
	assert.Equal(t, "-", OptionLetter(5))
	assert.Equal(t, "-", OptionLetter(-1))
}
