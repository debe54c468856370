package entity

import "strings"

type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatDOCX     ResultFormat = "docx"
	FormatPDF      ResultFormat = "pdf"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type CreateInformationRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type UpdateInformationRequest struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// MaxContextsPerRequest limits how many informations one generation request may use.
const MaxContextsPerRequest = 5

type GenerateQuestionsRequest struct {
	Category string   `json:"-"`
	Contexts []string `json:"contexts"`
}

// Normalize trims the contexts and drops blank ones.
func (r *GenerateQuestionsRequest) Normalize() {
	contexts := make([]string, 0, len(r.Contexts))
	for _, c := range r.Contexts {
		if c = strings.TrimSpace(c); c != "" {
			contexts = append(contexts, c)
		}
	}
	r.Contexts = contexts
}

type GenerateQuestionsResponse struct {
	Message  string          `json:"message"`
	Count    int             `json:"count"`
	IDs      []string        `json:"ids"`
	Stats    GenerationStats `json:"stats"`
	Failures []ItemFailure   `json:"failures"`
}

type ExportRequest struct {
	Category string
	Format   ResultFormat
}

type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}
