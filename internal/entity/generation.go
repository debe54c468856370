package entity

import (
	"fmt"
	"strings"
)

// GeneratedQuestion is the structured output every generation call must produce.
type GeneratedQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
}

// Validate rejects outputs that do not carry both fields.
func (g *GeneratedQuestion) Validate() error {
	if strings.TrimSpace(g.Question) == "" {
		return fmt.Errorf("%w: missing question", ErrSchemaViolation)
	}
	if strings.TrimSpace(g.CorrectAnswer) == "" {
		return fmt.Errorf("%w: missing correct_answer", ErrSchemaViolation)
	}
	return nil
}

// TokenUsage counts the tokens consumed by one or more completion calls.
type TokenUsage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

func (u TokenUsage) Add(other TokenUsage) TokenUsage {
	return TokenUsage{
		InputTokens:  u.InputTokens + other.InputTokens,
		OutputTokens: u.OutputTokens + other.OutputTokens,
	}
}

// Pricing holds USD prices per million tokens.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// DefaultPricing matches the published rates of the generation model.
func DefaultPricing() Pricing {
	return Pricing{InputPerMillion: 0.15, OutputPerMillion: 0.6}
}

// Stats derives the monetary cost of usage.
func (p Pricing) Stats(usage TokenUsage) GenerationStats {
	costInput := float64(usage.InputTokens) * p.InputPerMillion / 1_000_000
	costOutput := float64(usage.OutputTokens) * p.OutputPerMillion / 1_000_000

	return GenerationStats{
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		CostInput:    costInput,
		CostOutput:   costOutput,
		TotalCost:    costInput + costOutput,
	}
}

type GenerationStats struct {
	InputTokens  int     `json:"inputTokens"`
	OutputTokens int     `json:"outputTokens"`
	CostInput    float64 `json:"costInput"`
	CostOutput   float64 `json:"costOutput"`
	TotalCost    float64 `json:"totalCost"`
}

// GenerationStage names the pipeline step an item failed in.
type GenerationStage string

const (
	StageSplit    GenerationStage = "split"
	StageEmbed    GenerationStage = "embed"
	StageRetrieve GenerationStage = "retrieve"
	StageGenerate GenerationStage = "generate"
	StagePersist  GenerationStage = "persist"
)

// StageError tags an error with the stage it happened in.
type StageError struct {
	Stage GenerationStage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ItemFailure explains why one requested question is missing from a result.
type ItemFailure struct {
	Index   int             `json:"index"`
	Stage   GenerationStage `json:"stage"`
	Reason  string          `json:"reason"`
	Context string          `json:"context,omitempty"`
}

// GenerationOutcome is the single-item result: the question, the retrieved
// passages used as extra context and the information it was asked about.
type GenerationOutcome struct {
	Question          GeneratedQuestion `json:"question"`
	AdditionalContext string            `json:"additionalContext"`
	Information       string            `json:"information"`
	Usage             TokenUsage        `json:"usage"`
}

// BatchResult is the batch-form result. Questions may be fewer than requested;
// Failures lists every missing item.
type BatchResult struct {
	Questions []GeneratedQuestion `json:"questions"`
	Failures  []ItemFailure       `json:"failures"`
	Stats     GenerationStats     `json:"stats"`
}

// Partial reports whether some requested items failed.
func (r *BatchResult) Partial() bool {
	return len(r.Failures) > 0
}

// InformationBatchResult holds one slot per requested information, in request
// order. A failed slot is nil and has a matching entry in Failures.
type InformationBatchResult struct {
	Outcomes []*GenerationOutcome `json:"outcomes"`
	Failures []ItemFailure        `json:"failures"`
	Stats    GenerationStats      `json:"stats"`
}

// Succeeded returns the non-nil outcomes, keeping their order.
func (r *InformationBatchResult) Succeeded() []*GenerationOutcome {
	out := make([]*GenerationOutcome, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}
