package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/integration/common"
	pkgRetry "github.com/umstad/quizgen/internal/pkg/retry"
	"go.uber.org/zap"
)

type Connector struct {
	embedder embeddings.Embedder
	cache    *cache.Cache
	retry    pkgRetry.RetryConfig
	model    string
	logger   *zap.Logger
}

func NewConnector(
	cfg config.OpenAIConfig,
	cacheCfg config.EmbeddingCacheConfig,
	logger *zap.Logger,
) (*Connector, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.Token),
		openai.WithEmbeddingModel(cfg.EmbeddingModel),
		openai.WithHTTPClient(common.NewHTTPClient(cfg.HTTPClientConfig)),
	}
	if cfg.Url != "" {
		opts = append(opts, openai.WithBaseURL(cfg.Url))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	return NewConnectorWithEmbedder(embedder, cfg.EmbeddingModel, cacheCfg, cfg.Retry, logger), nil
}

// NewConnectorWithEmbedder wraps any langchaingo embedder with caching and retries.
func NewConnectorWithEmbedder(
	embedder embeddings.Embedder,
	model string,
	cacheCfg config.EmbeddingCacheConfig,
	retryCfg pkgRetry.RetryConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		embedder: embedder,
		cache:    cache.New(cacheCfg.TTL, cacheCfg.CleanupInterval),
		retry:    retryCfg,
		model:    model,
		logger:   logger,
	}
}

// Embed converts text into a vector. Identical texts are served from cache.
func (c *Connector) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyText
	}

	key := c.cacheKey(text)
	if cached, ok := c.cache.Get(key); ok {
		ctxzap.Debug(ctx, "embedding served from cache", zap.String("hash", key[:12]))
		return cached.([]float32), nil
	}

	vector, err := pkgRetry.Do(ctx, &c.retry, func() ([]float32, error) {
		return c.embedder.EmbedQuery(ctx, text)
	})
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}

	if len(vector) == 0 {
		return nil, entity.ErrEmptyEmbedding
	}

	c.cache.SetDefault(key, vector)

	ctxzap.Debug(ctx, "text embedded",
		zap.String("model", c.model),
		zap.Int("dimension", len(vector)),
		zap.Int("text_length", len(text)),
	)

	return vector, nil
}

// EmbedMany converts several texts in one call. Used when indexing the knowledge base.
func (c *Connector) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("text %d: %w", i, entity.ErrEmptyText)
		}
	}

	vectors, err := pkgRetry.Do(ctx, &c.retry, func() ([][]float32, error) {
		return c.embedder.EmbedDocuments(ctx, texts)
	})
	if err != nil {
		return nil, fmt.Errorf("embed texts: %w", err)
	}

	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d texts", entity.ErrEmptyEmbedding, len(vectors), len(texts))
	}

	for i, text := range texts {
		c.cache.SetDefault(c.cacheKey(text), vectors[i])
	}

	return vectors, nil
}

func (c *Connector) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(c.model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
