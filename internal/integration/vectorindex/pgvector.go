package vectorindex

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"github.com/umstad/quizgen/internal/entity"
	"go.uber.org/zap"
)

// PGVectorStore keeps knowledge passages in a Postgres table with a vector column.
// The table is created by the migrations.
type PGVectorStore struct {
	pool   *pgxpool.Pool
	table  string
	logger *zap.Logger
}

func NewPGVectorStore(pool *pgxpool.Pool, table string, logger *zap.Logger) *PGVectorStore {
	return &PGVectorStore{
		pool:   pool,
		table:  pgx.Identifier{table}.Sanitize(),
		logger: logger,
	}
}

func (s *PGVectorStore) Retrieve(ctx context.Context, vector []float32, topK int) ([]string, error) {
	if len(vector) == 0 {
		return nil, entity.ErrEmptyEmbedding
	}

	query := fmt.Sprintf(`
		SELECT text
		FROM %s
		ORDER BY embedding <=> $1
		LIMIT $2`, s.table)

	rows, err := s.pool.Query(ctx, query, pgvector.NewVector(vector), topK)
	if err != nil {
		return nil, fmt.Errorf("query passages: %w", err)
	}
	defer rows.Close()

	texts := make([]string, 0, topK)
	for rows.Next() {
		var text *string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan passage: %w", err)
		}
		if text == nil {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, *text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passages: %w", err)
	}

	ctxzap.Debug(ctx, "passages retrieved", zap.Int("top_k", topK), zap.Int("match_count", len(texts)))

	return texts, nil
}

func (s *PGVectorStore) Upsert(ctx context.Context, passages []entity.KnowledgePassage) error {
	stmt := fmt.Sprintf(`
		INSERT INTO %s (id, text, embedding)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			text = EXCLUDED.text,
			embedding = EXCLUDED.embedding`, s.table)

	batch := &pgx.Batch{}
	for _, p := range passages {
		batch.Queue(stmt, p.ID, p.Text, pgvector.NewVector(p.Vector))
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert passages: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit passages: %w", err)
	}

	ctxzap.Info(ctx, "passages upserted", zap.Int("count", len(passages)))
	return nil
}
