package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/integration/common"
	pkgRetry "github.com/umstad/quizgen/internal/pkg/retry"
	"go.uber.org/zap"
)

const schemaName = "question"

// contentGenerator is the part of llms.Model the connector needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

type Connector struct {
	llm    contentGenerator
	model  string
	retry  pkgRetry.RetryConfig
	logger *zap.Logger
}

func NewConnector(cfg config.OpenAIConfig, logger *zap.Logger) (*Connector, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.Token),
		openai.WithModel(cfg.GenerationModel),
		openai.WithHTTPClient(common.NewHTTPClient(cfg.HTTPClientConfig)),
		openai.WithResponseFormat(questionResponseFormat()),
	}
	if cfg.Url != "" {
		opts = append(opts, openai.WithBaseURL(cfg.Url))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	return newConnector(client, cfg.GenerationModel, cfg.Retry, logger), nil
}

func newConnector(gen contentGenerator, model string, retryCfg pkgRetry.RetryConfig, logger *zap.Logger) *Connector {
	return &Connector{
		llm:    gen,
		model:  model,
		retry:  retryCfg,
		logger: logger,
	}
}

// questionResponseFormat forces {question, correct_answer} structured output.
func questionResponseFormat() *openai.ResponseFormat {
	return &openai.ResponseFormat{
		Type: "json_schema",
		JSONSchema: &openai.ResponseFormatJSONSchema{
			Name:   schemaName,
			Strict: true,
			Schema: &openai.ResponseFormatJSONSchemaProperty{
				Type: "object",
				Properties: map[string]*openai.ResponseFormatJSONSchemaProperty{
					"question":       {Type: "string"},
					"correct_answer": {Type: "string"},
				},
				Required:             []string{"question", "correct_answer"},
				AdditionalProperties: false,
			},
		},
	}
}

// Generate sends the system and user messages and parses the structured question.
// Output that does not match the schema fails with entity.ErrSchemaViolation and is not retried.
func (c *Connector) Generate(ctx context.Context, system, user string) (*entity.GeneratedQuestion, entity.TokenUsage, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}

	resp, err := pkgRetry.Do(ctx, &c.retry, func() (*llms.ContentResponse, error) {
		return c.llm.GenerateContent(ctx, messages)
	})
	if err != nil {
		return nil, entity.TokenUsage{}, fmt.Errorf("generate content: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return nil, entity.TokenUsage{}, entity.ErrNoChoices
	}

	choice := resp.Choices[0]
	usage := usageFromInfo(choice.GenerationInfo)

	question, err := ParseQuestion(choice.Content)
	if err != nil {
		ctxzap.Warn(ctx, "generation output rejected",
			zap.String("model", c.model),
			zap.Error(err),
		)
		return nil, usage, err
	}

	ctxzap.Debug(ctx, "question generated",
		zap.String("model", c.model),
		zap.Int("input_tokens", usage.InputTokens),
		zap.Int("output_tokens", usage.OutputTokens),
	)

	return question, usage, nil
}

// ParseQuestion decodes a completion strictly: unknown fields, trailing data and
// empty fields are all schema violations.
func ParseQuestion(content string) (*entity.GeneratedQuestion, error) {
	content = stripCodeFence(strings.TrimSpace(content))
	if content == "" {
		return nil, fmt.Errorf("%w: empty completion", entity.ErrSchemaViolation)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(content)))
	dec.DisallowUnknownFields()

	var q entity.GeneratedQuestion
	if err := dec.Decode(&q); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrSchemaViolation, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after object", entity.ErrSchemaViolation)
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return &q, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func usageFromInfo(info map[string]any) entity.TokenUsage {
	return entity.TokenUsage{
		InputTokens:  intFromInfo(info, "PromptTokens"),
		OutputTokens: intFromInfo(info, "CompletionTokens"),
	}
}

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// IsSchemaViolation reports whether err came from rejected model output.
func IsSchemaViolation(err error) bool {
	return errors.Is(err, entity.ErrSchemaViolation)
}
