package vectorindex

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/entity"
	"go.uber.org/zap"
)

var mockPassages = []string{
	"Malazgirt Savaşı (1071) ile Anadolu'nun kapıları Türklere açılmıştır.",
	"Türkiye Selçuklu Devleti, Kösedağ Savaşı (1243) sonrasında Moğol hakimiyetine girmiştir.",
	"Ahilik teşkilatı, Anadolu'da esnaf ve sanatkârların dayanışmasını sağlamıştır.",
}

// MockConnector returns canned passages and accepts any upsert.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Retrieve(ctx context.Context, vector []float32, topK int) ([]string, error) {
	ctxzap.Info(ctx, "[MOCK] retrieving passages", zap.Int("top_k", topK))

	n := min(topK, len(mockPassages))
	out := make([]string, n)
	copy(out, mockPassages[:n])
	return out, nil
}

func (m *MockConnector) Upsert(ctx context.Context, passages []entity.KnowledgePassage) error {
	ctxzap.Info(ctx, "[MOCK] upserting passages", zap.Int("count", len(passages)))
	return nil
}
