package formatter

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (mf *DOCXFormatter) Format(sheet ExamSheet) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(sheet.Title)

	for i, q := range sheet.Questions {
		doc.AddParagraph()

		qPar := doc.AddParagraph()
		numRun := qPar.AddRun()
		numRun.Properties().SetBold(true)
		numRun.AddText(fmt.Sprintf("%d. ", i+1))
		qPar.AddRun().AddText(q.EffectiveQuestion())

		for j, a := range q.EffectiveAnswers() {
			doc.AddParagraph().AddRun().AddText(optionLine(j, a))
		}
	}

	if len(sheet.Questions) > 0 {
		doc.AddParagraph()
		keyTitle := doc.AddParagraph()
		keyTitle.SetStyle("Heading2")
		keyTitle.AddRun().AddText(answerKeyTitle)
		doc.AddParagraph().AddRun().AddText(answerKey(sheet.Questions))
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (mf *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
