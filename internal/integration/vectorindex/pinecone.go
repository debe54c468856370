package vectorindex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/integration/common"
	pkgRetry "github.com/umstad/quizgen/internal/pkg/retry"
	pkghttp "github.com/umstad/quizgen/pkg/http"
	"go.uber.org/zap"
)

const (
	pineconeQueryEndpoint  = "/query"
	pineconeUpsertEndpoint = "/vectors/upsert"
	pineconeAPIKeyHeader   = "Api-Key"

	// Pinecone rejects upserts larger than 2MB; 100 vectors of 1536 dims fit.
	pineconeUpsertBatch = 100
)

// PineconeConnector talks to a single Pinecone index host over its REST API.
type PineconeConnector struct {
	connector *pkghttp.Connector
	namespace string
	retry     pkgRetry.RetryConfig
	logger    *zap.Logger
}

func NewPineconeConnector(cfg config.VectorIndexConfig, logger *zap.Logger) *PineconeConnector {
	return &PineconeConnector{
		connector: common.NewAPIKeyConnector(cfg.PineconeCfg, pineconeAPIKeyHeader, logger),
		namespace: cfg.Namespace,
		retry:     cfg.Retry,
		logger:    logger,
	}
}

// Retrieve returns metadata.text of the topK nearest matches, most similar first.
// Matches without text yield an empty string.
func (c *PineconeConnector) Retrieve(ctx context.Context, vector []float32, topK int) ([]string, error) {
	if len(vector) == 0 {
		return nil, entity.ErrEmptyEmbedding
	}

	req := &entity.PineconeQueryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: true,
		Namespace:       c.namespace,
	}

	resp, err := pkgRetry.Do(ctx, &c.retry, func() (*entity.PineconeQueryResponse, error) {
		var resp entity.PineconeQueryResponse
		if err := c.connector.DoRequest(ctx, http.MethodPost, pineconeQueryEndpoint, req, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("query pinecone: %w", err)
	}

	texts := make([]string, 0, len(resp.Matches))
	for i := range resp.Matches {
		texts = append(texts, resp.Matches[i].Text())
	}

	ctxzap.Debug(ctx, "passages retrieved",
		zap.Int("top_k", topK),
		zap.Int("match_count", len(texts)),
	)

	return texts, nil
}

// Upsert writes passages into the index in batches, storing the text as metadata.
func (c *PineconeConnector) Upsert(ctx context.Context, passages []entity.KnowledgePassage) error {
	for start := 0; start < len(passages); start += pineconeUpsertBatch {
		end := min(start+pineconeUpsertBatch, len(passages))

		req := &entity.PineconeUpsertRequest{
			Vectors:   make([]entity.PineconeVector, 0, end-start),
			Namespace: c.namespace,
		}
		for _, p := range passages[start:end] {
			req.Vectors = append(req.Vectors, entity.PineconeVector{
				ID:       p.ID,
				Values:   p.Vector,
				Metadata: map[string]any{"text": p.Text},
			})
		}

		resp, err := pkgRetry.Do(ctx, &c.retry, func() (*entity.PineconeUpsertResponse, error) {
			var resp entity.PineconeUpsertResponse
			if err := c.connector.DoRequest(ctx, http.MethodPost, pineconeUpsertEndpoint, req, &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		})
		if err != nil {
			return fmt.Errorf("upsert pinecone batch %d-%d: %w", start, end, err)
		}

		ctxzap.Info(ctx, "passages upserted",
			zap.Int("batch_start", start),
			zap.Int("upserted", resp.UpsertedCount),
		)
	}

	return nil
}
