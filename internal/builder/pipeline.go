package builder

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/integration/embedding"
	"github.com/umstad/quizgen/internal/integration/llm"
	"github.com/umstad/quizgen/internal/integration/vectorindex"
	"github.com/umstad/quizgen/internal/usecase/generation"
	"go.uber.org/zap"
)

// Embedder is the embedding connector as seen by the commands.
type Embedder interface {
	generation.Embedder
	EmbedMany(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorIndex serves retrieval and knowledge base updates.
type VectorIndex interface {
	generation.Retriever
	Upsert(ctx context.Context, passages []entity.KnowledgePassage) error
}

// Pipeline is the generation stack shared by the server and the commands.
type Pipeline struct {
	Config     *config.Config
	Logger     *zap.Logger
	Embedder   Embedder
	Index      VectorIndex
	Generation *generation.GenerationUsecase

	db *pgxpool.Pool
}

// Close releases the database pool when the pipeline owns one.
func (p *Pipeline) Close() {
	if p.db != nil {
		p.db.Close()
	}
	_ = p.Logger.Sync()
}

// BuildPipeline wires the generation stack for the given environment. A
// database connection is opened only for the pgvector provider.
func BuildPipeline(ctx context.Context, environment string) (*Pipeline, error) {
	cfg, err := config.Load(environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	var db *pgxpool.Pool
	if !cfg.EnableMocks && cfg.VectorIndexCfg.Provider == config.VectorProviderPGVector {
		db, err = setupMigratedDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	p, err := newPipeline(cfg, db, logger)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}
	p.db = db

	return p, nil
}

func newPipeline(cfg *config.Config, db *pgxpool.Pool, logger *zap.Logger) (*Pipeline, error) {
	var (
		embedder  Embedder
		index     VectorIndex
		generator generation.QuestionGenerator
	)

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		embedder = embedding.NewMockConnector(cfg.VectorIndexCfg.Dimension, logger)
		index = vectorindex.NewMockConnector(logger)
		generator = llm.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services",
			zap.String("vector_provider", cfg.VectorIndexCfg.Provider),
			zap.String("embedding_model", cfg.OpenAICfg.EmbeddingModel),
			zap.String("generation_model", cfg.OpenAICfg.GenerationModel),
		)

		embedConn, err := embedding.NewConnector(cfg.OpenAICfg, cfg.EmbeddingCacheCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup embedding connector: %w", err)
		}
		embedder = embedConn

		llmConn, err := llm.NewConnector(cfg.OpenAICfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup generation connector: %w", err)
		}
		generator = llmConn

		switch cfg.VectorIndexCfg.Provider {
		case config.VectorProviderPGVector:
			if db == nil {
				return nil, fmt.Errorf("pgvector provider needs a database connection")
			}
			index = vectorindex.NewPGVectorStore(db, cfg.VectorIndexCfg.TableName, logger)
		default:
			index = vectorindex.NewPineconeConnector(cfg.VectorIndexCfg, logger)
		}
	}

	return &Pipeline{
		Config:     cfg,
		Logger:     logger,
		Embedder:   embedder,
		Index:      index,
		Generation: generation.NewUsecase(embedder, index, generator, cfg.GenerationCfg, logger),
	}, nil
}
