package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/umstad/quizgen/internal/entity"
	pkgRetry "github.com/umstad/quizgen/internal/pkg/retry"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	content  string
	info     map[string]any
	err      error
	calls    int
	messages []llms.MessageContent
}

func (f *fakeGenerator) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content, GenerationInfo: f.info}},
	}, nil
}

func newTestConnector(gen contentGenerator) *Connector {
	return newConnector(gen, "test-model", pkgRetry.RetryConfig{Attempts: 1}, zap.NewNop())
}

func TestGenerate_ParsesQuestionAndUsage(t *testing.T) {
	gen := &fakeGenerator{
		content: `{"question":"Soru?","correct_answer":"Cevap B"}`,
		info:    map[string]any{"PromptTokens": 120, "CompletionTokens": float64(40)},
	}
	c := newTestConnector(gen)

	q, usage, err := c.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "Soru?", q.Question)
	assert.Equal(t, "Cevap B", q.CorrectAnswer)
	assert.Equal(t, entity.TokenUsage{InputTokens: 120, OutputTokens: 40}, usage)

	require.Len(t, gen.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, gen.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, gen.messages[1].Role)
}

func TestGenerate_MissingUsageDefaultsToZero(t *testing.T) {
	c := newTestConnector(&fakeGenerator{content: `{"question":"Soru?","correct_answer":"Cevap A"}`})

	_, usage, err := c.Generate(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, entity.TokenUsage{}, usage)
}

func TestGenerate_MissingCorrectAnswerIsFailure(t *testing.T) {
	gen := &fakeGenerator{content: `{"question":"Soru?"}`}
	c := newTestConnector(gen)

	q, _, err := c.Generate(context.Background(), "s", "u")
	assert.Nil(t, q)
	assert.True(t, IsSchemaViolation(err))
	assert.Equal(t, 1, gen.calls)
}

func TestGenerate_ServiceError(t *testing.T) {
	c := newTestConnector(&fakeGenerator{err: errors.New("timeout")})

	_, _, err := c.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.False(t, IsSchemaViolation(err))
}

func TestParseQuestion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "valid", content: `{"question":"q","correct_answer":"a"}`},
		{name: "fenced", content: "```json\n{\"question\":\"q\",\"correct_answer\":\"a\"}\n```"},
		{name: "unknown field", content: `{"question":"q","correct_answer":"a","extra":1}`, wantErr: true},
		{name: "empty answer", content: `{"question":"q","correct_answer":"  "}`, wantErr: true},
		{name: "not json", content: `Cevap A`, wantErr: true},
		{name: "trailing object", content: `{"question":"q","correct_answer":"a"}{}`, wantErr: true},
		{name: "empty", content: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuestion(tt.content)
			if tt.wantErr {
				assert.ErrorIs(t, err, entity.ErrSchemaViolation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "q", q.Question)
		})
	}
}

func TestMockConnector_Deterministic(t *testing.T) {
	m := NewMockConnector(zap.NewNop())

	a, ua, err := m.Generate(context.Background(), "sys", "prefix: Malazgirt")
	require.NoError(t, err)
	b, ub, err := m.Generate(context.Background(), "sys", "prefix: Malazgirt")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, ua, ub)
	assert.Contains(t, a.Question, "Malazgirt")
	assert.NoError(t, a.Validate())
}
