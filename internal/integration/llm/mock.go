package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/entity"
	"go.uber.org/zap"
)

// MockConnector builds a deterministic question out of the user message.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, system, user string) (*entity.GeneratedQuestion, entity.TokenUsage, error) {
	ctxzap.Info(ctx, "[MOCK] generating question")

	topic := strings.TrimSpace(user)
	if idx := strings.LastIndex(topic, ": "); idx >= 0 {
		topic = strings.TrimSpace(topic[idx+2:])
	}
	if utf8.RuneCountInString(topic) > 80 {
		topic = string([]rune(topic)[:80])
	}

	q := &entity.GeneratedQuestion{
		Question: fmt.Sprintf(
			"%s\nBu bilgiye göre aşağıdakilerden hangisi doğrudur?\nA) I\nB) II\nC) III\nD) I ve II\nE) I, II ve III",
			topic,
		),
		CorrectAnswer: "Cevap A",
	}

	usage := entity.TokenUsage{
		InputTokens:  utf8.RuneCountInString(system) / 4,
		OutputTokens: utf8.RuneCountInString(q.Question) / 4,
	}

	return q, usage, nil
}
