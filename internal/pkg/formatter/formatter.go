package formatter

import (
	"fmt"
	"strings"

	"github.com/umstad/quizgen/internal/entity"
)

const answerKeyTitle = "Cevap Anahtarı"

var optionLetters = []string{"A", "B", "C", "D", "E"}

type Formatter interface {
	Format(sheet ExamSheet) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// ExamSheet is a titled list of questions rendered with the reviewer's
// preferred text, options and answers.
type ExamSheet struct {
	Title     string
	Questions []*entity.Question
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", entity.ErrInvalidFormat, format)
	}
}

// OptionLetter maps an answer index to its letter, or "-" when out of range.
func OptionLetter(i int) string {
	if i < 0 || i >= len(optionLetters) {
		return "-"
	}
	return optionLetters[i]
}

// answerKey renders "1-A 2-D ..." for the sheet.
func answerKey(questions []*entity.Question) string {
	parts := make([]string, 0, len(questions))
	for i, q := range questions {
		parts = append(parts, fmt.Sprintf("%d-%s", i+1, OptionLetter(q.EffectiveCorrectAnswer())))
	}
	return strings.Join(parts, " ")
}

func optionLine(i int, answer string) string {
	return fmt.Sprintf("%s) %s", OptionLetter(i), answer)
}
