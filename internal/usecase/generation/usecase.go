package generation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/contextsplit"
	"github.com/umstad/quizgen/internal/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GenerationUsecase runs the retrieval-augmented question pipeline:
// embed window, retrieve passages, assemble prompt, generate.
type GenerationUsecase struct {
	embedder  Embedder
	retriever Retriever
	generator QuestionGenerator
	cfg       config.GenerationConfig
	template  string
	logger    *zap.Logger
}

func NewUsecase(
	embedder Embedder,
	retriever Retriever,
	generator QuestionGenerator,
	cfg config.GenerationConfig,
	logger *zap.Logger,
) *GenerationUsecase {
	return &GenerationUsecase{
		embedder:  embedder,
		retriever: retriever,
		generator: generator,
		cfg:       cfg,
		template:  SystemPrompt,
		logger:    logger,
	}
}

// BatchRequest drives GenerateBatch. A nil Overlap uses the configured default.
type BatchRequest struct {
	NumberOfQuestions int
	Context           string
	Overlap           *int
	Verbose           bool
	// OnItem is called after every item, successful or not.
	OnItem func(index int, question *entity.GeneratedQuestion, err error)
}

type itemResult struct {
	question *entity.GeneratedQuestion
	passages []string
	usage    entity.TokenUsage
}

// GenerateBatch generates NumberOfQuestions questions spread evenly over the
// windows of the combined context. Items are processed in order; a failed item
// is recorded in Failures and the loop moves on.
func (uc *GenerationUsecase) GenerateBatch(ctx context.Context, req BatchRequest) (*entity.BatchResult, error) {
	ctx = logger.WithAction(ctx, "generate_batch")

	if req.NumberOfQuestions <= 0 {
		return nil, entity.ErrInvalidQuestions
	}
	if strings.TrimSpace(req.Context) == "" {
		return nil, entity.ErrEmptyText
	}

	overlap := uc.cfg.Overlap
	if req.Overlap != nil {
		overlap = *req.Overlap
	}

	ctx, cancel := uc.withBatchDeadline(ctx)
	defer cancel()

	splitter := contextsplit.New(req.Context, overlap)
	length := splitter.Len()

	ctxzap.Info(ctx, "batch generation started",
		zap.Int("questions", req.NumberOfQuestions),
		zap.Int("segments", len(splitter.Segments())),
		zap.Int("windows", length),
		zap.Int("overlap", splitter.Overlap()),
	)

	result := &entity.BatchResult{
		Questions: make([]entity.GeneratedQuestion, 0, req.NumberOfQuestions),
	}
	var usage entity.TokenUsage
	var history []string

	for i := 0; i < req.NumberOfQuestions; i++ {
		idx := contextsplit.SpreadIndex(i, req.NumberOfQuestions, length)
		itemCtx := logger.AddFields(ctx, zap.Int("item", i), zap.Int("window", idx))

		window, err := splitter.Item(idx)
		if err != nil {
			err = &entity.StageError{Stage: entity.StageSplit, Err: err}
		}

		var item *itemResult
		if err == nil {
			item, err = uc.generateOne(itemCtx, window)
			if item != nil {
				usage = usage.Add(item.usage)
			}
		}

		if err != nil {
			ctxzap.Error(itemCtx, "failed to prepare question",
				zap.Error(err),
				zap.Strings("history", history),
			)
			result.Failures = append(result.Failures, newFailure(i, window, err))
			if req.OnItem != nil {
				req.OnItem(i, nil, err)
			}
			continue
		}

		result.Questions = append(result.Questions, *item.question)
		history = append(history, item.question.Question)

		if req.Verbose {
			ctxzap.Info(itemCtx, "question generated",
				zap.String("question", item.question.Question),
				zap.String("correct_answer", item.question.CorrectAnswer),
			)
		}
		if req.OnItem != nil {
			req.OnItem(i, item.question, nil)
		}
	}

	result.Stats = uc.cfg.Pricing().Stats(usage)

	ctxzap.Info(ctx, "batch generation finished",
		zap.Int("generated", len(result.Questions)),
		zap.Int("failed", len(result.Failures)),
		zap.Float64("total_cost", result.Stats.TotalCost),
	)

	return result, nil
}

// GenerateForInformation generates exactly one question about information and
// returns it with the retrieved passages joined as additional context.
func (uc *GenerationUsecase) GenerateForInformation(ctx context.Context, information string) (*entity.GenerationOutcome, error) {
	information = strings.TrimSpace(information)
	if information == "" {
		return nil, &entity.StageError{Stage: entity.StageEmbed, Err: entity.ErrEmptyText}
	}

	item, err := uc.generateOne(ctx, information)
	if err != nil {
		return nil, err
	}

	return &entity.GenerationOutcome{
		Question:          *item.question,
		AdditionalContext: strings.Join(item.passages, "\n"),
		Information:       information,
		Usage:             item.usage,
	}, nil
}

// GenerateForInformations runs GenerateForInformation for every information
// concurrently. Outcomes are index-aligned with informations.
func (uc *GenerationUsecase) GenerateForInformations(ctx context.Context, informations []string) (*entity.InformationBatchResult, error) {
	ctx = logger.WithAction(ctx, "generate_for_informations")

	if len(informations) == 0 {
		return nil, entity.ErrNoContexts
	}

	ctx, cancel := uc.withBatchDeadline(ctx)
	defer cancel()

	result := &entity.InformationBatchResult{
		Outcomes: make([]*entity.GenerationOutcome, len(informations)),
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(uc.cfg.Concurrency, 1))

	for i, information := range informations {
		g.Go(func() error {
			itemCtx := logger.AddFields(gctx, zap.Int("item", i))

			outcome, err := uc.GenerateForInformation(itemCtx, information)
			if err != nil {
				ctxzap.Error(itemCtx, "failed to prepare question", zap.Error(err))

				mu.Lock()
				result.Failures = append(result.Failures, newFailure(i, information, err))
				mu.Unlock()
				return nil
			}

			result.Outcomes[i] = outcome
			return nil
		})
	}

	// Items never return errors, so Wait only synchronises.
	_ = g.Wait()

	sort.Slice(result.Failures, func(a, b int) bool {
		return result.Failures[a].Index < result.Failures[b].Index
	})

	var usage entity.TokenUsage
	for _, o := range result.Outcomes {
		if o != nil {
			usage = usage.Add(o.Usage)
		}
	}
	result.Stats = uc.cfg.Pricing().Stats(usage)

	ctxzap.Info(ctx, "informations processed",
		zap.Int("requested", len(informations)),
		zap.Int("failed", len(result.Failures)),
		zap.Float64("total_cost", result.Stats.TotalCost),
	)

	return result, nil
}

// generateOne runs the pipeline for one window. The returned item carries the
// usage spent even when generation output was rejected.
func (uc *GenerationUsecase) generateOne(ctx context.Context, window string) (*itemResult, error) {
	if uc.cfg.ItemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.ItemTimeout)
		defer cancel()
	}

	vector, err := uc.embedder.Embed(ctx, window)
	if err != nil {
		return nil, &entity.StageError{Stage: entity.StageEmbed, Err: err}
	}

	passages, err := uc.retriever.Retrieve(ctx, vector, uc.cfg.TopK)
	if err != nil {
		return nil, &entity.StageError{Stage: entity.StageRetrieve, Err: err}
	}

	prompt := Assemble(uc.template, passages, window)

	question, usage, err := uc.generator.Generate(ctx, prompt.System, prompt.User)
	if err != nil {
		return &itemResult{usage: usage}, &entity.StageError{Stage: entity.StageGenerate, Err: err}
	}

	return &itemResult{
		question: question,
		passages: passages,
		usage:    usage,
	}, nil
}

func (uc *GenerationUsecase) withBatchDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.BatchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.cfg.BatchTimeout)
}

func newFailure(index int, text string, err error) entity.ItemFailure {
	stage := entity.StageGenerate
	var stageErr *entity.StageError
	if errors.As(err, &stageErr) {
		stage = stageErr.Stage
		err = stageErr.Err
	}

	return entity.ItemFailure{
		Index:   index,
		Stage:   stage,
		Reason:  err.Error(),
		Context: excerpt(text, 120),
	}
}

func excerpt(s string, limit int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= limit {
		return string(r)
	}
	return fmt.Sprintf("%s...", string(r[:limit]))
}
