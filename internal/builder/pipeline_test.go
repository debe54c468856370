package builder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/contextsplit"
	"github.com/umstad/quizgen/internal/usecase/generation"
	"go.uber.org/zap"
)

func mockConfig() *config.Config {
	return &config.Config{
		EnableMocks: true,
		VectorIndexCfg: config.VectorIndexConfig{
			Provider:  config.VectorProviderPinecone,
			Dimension: 16,
		},
		GenerationCfg: config.GenerationConfig{
			Overlap:      0,
			TopK:         2,
			ItemTimeout:  time.Second,
			BatchTimeout: time.Minute,
			Concurrency:  2,
		},
	}
}

func TestNewPipeline_MocksRunBatch(t *testing.T) {
	p, err := newPipeline(mockConfig(), nil, zap.NewNop())
	require.NoError(t, err)

	text := contextsplit.Join([]string{
		"Malazgirt Savaşı 1071 yılında yapıldı.",
		"Miryokefalon Savaşı 1176 yılında yapıldı.",
		"Kösedağ Savaşı 1243 yılında yapıldı.",
	})

	var seen []int
	result, err := p.Generation.GenerateBatch(context.Background(), generation.BatchRequest{
		NumberOfQuestions: 3,
		Context:           text,
		OnItem: func(index int, _ *entity.GeneratedQuestion, err error) {
			assert.NoError(t, err)
			seen = append(seen, index)
		},
	})
	require.NoError(t, err)

	assert.Len(t, result.Questions, 3)
	assert.Empty(t, result.Failures)
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Contains(t, result.Questions[0].Question, "Malazgirt")
	assert.Contains(t, result.Questions[2].Question, "Kösedağ")
	assert.Greater(t, result.Stats.InputTokens, 0)
}

func TestNewPipeline_MockIndexAcceptsUpsert(t *testing.T) {
	p, err := newPipeline(mockConfig(), nil, zap.NewNop())
	require.NoError(t, err)

	vectors, err := p.Embedder.EmbedMany(context.Background(), []string{"Tanzimat Fermanı 1839"})
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	assert.Len(t, vectors[0], 16)

	err = p.Index.Upsert(context.Background(), []entity.KnowledgePassage{
		{ID: "1", Text: "Tanzimat Fermanı 1839", Vector: vectors[0]},
	})
	assert.NoError(t, err)
}

func TestNewPipeline_PGVectorNeedsDatabase(t *testing.T) {
	cfg := mockConfig()
	cfg.EnableMocks = false
	cfg.OpenAICfg.Token = "sk-test"
	cfg.VectorIndexCfg.Provider = config.VectorProviderPGVector

	_, err := newPipeline(cfg, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	logger, err := setupLogger("debug", "local")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = setupLogger("warn", "prod")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))

	_, err = setupLogger("loud", "prod")
	assert.Error(t, err)
}
