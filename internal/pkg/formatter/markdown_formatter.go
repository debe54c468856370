package formatter

import (
	"bytes"
	"fmt"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(sheet ExamSheet) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", sheet.Title)

	for i, q := range sheet.Questions {
		fmt.Fprintf(&buf, "**%d.** %s\n\n", i+1, q.EffectiveQuestion())
		for j, a := range q.EffectiveAnswers() {
			fmt.Fprintf(&buf, "- %s\n", optionLine(j, a))
		}
		buf.WriteString("\n")
	}

	if len(sheet.Questions) > 0 {
		fmt.Fprintf(&buf, "## %s\n\n%s\n", answerKeyTitle, answerKey(sheet.Questions))
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
