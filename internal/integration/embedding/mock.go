package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/entity"
	"go.uber.org/zap"
)

// MockConnector produces deterministic unit vectors derived from the text hash.
type MockConnector struct {
	dimension int
	logger    *zap.Logger
}

func NewMockConnector(dimension int, logger *zap.Logger) *MockConnector {
	if dimension <= 0 {
		dimension = 8
	}
	return &MockConnector{
		dimension: dimension,
		logger:    logger,
	}
}

func (m *MockConnector) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyText
	}

	ctxzap.Debug(ctx, "[MOCK] embedding text", zap.Int("text_length", len(text)))
	return m.vector(text), nil
}

func (m *MockConnector) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for _, text := range texts {
		v, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}
	return vectors, nil
}

func (m *MockConnector) vector(text string) []float32 {
	hash := sha256.Sum256([]byte(text))
	vector := make([]float32, m.dimension)

	var sum float64
	for i := range vector {
		idx := (i * 4) % 32
		val := binary.BigEndian.Uint32(hash[idx : idx+4])
		vector[i] = (float32(val)/float32(math.MaxUint32))*2 - 1
		sum += float64(vector[i]) * float64(vector[i])
	}

	if sum > 0 {
		norm := float32(math.Sqrt(sum))
		for i := range vector {
			vector[i] /= norm
		}
	}

	return vector
}
