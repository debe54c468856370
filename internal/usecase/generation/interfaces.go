package generation

import (
	"context"

	"github.com/umstad/quizgen/internal/entity"
)

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Retriever interface {
	Retrieve(ctx context.Context, vector []float32, topK int) ([]string, error)
}

type QuestionGenerator interface {
	Generate(ctx context.Context, system, user string) (*entity.GeneratedQuestion, entity.TokenUsage, error)
}
