package question

import (
	"context"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/formatter"
	"github.com/umstad/quizgen/internal/pkg/logger"
	"github.com/umstad/quizgen/internal/pkg/validator"
	"github.com/umstad/quizgen/internal/repository"
	"go.uber.org/zap"
)

// QuestionUsecase implements generation, review and export of questions
type QuestionUsecase struct {
	questionRepo     repository.QuestionRepository
	generator        Generator
	validator        *validator.Validator
	formatterFactory *formatter.Factory
	logger           *zap.Logger
}

func NewUsecase(
	questionRepo repository.QuestionRepository,
	generator Generator,
	validator *validator.Validator,
	formatterFactory *formatter.Factory,
	logger *zap.Logger,
) *QuestionUsecase {
	return &QuestionUsecase{
		questionRepo:     questionRepo,
		generator:        generator,
		validator:        validator,
		formatterFactory: formatterFactory,
		logger:           logger,
	}
}

// List returns the questions of a category that still await review.
func (uc *QuestionUsecase) List(ctx context.Context, category string) ([]*entity.Question, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category", entity.ErrMissingField)
	}

	unchecked := false
	questions, err := uc.questionRepo.List(ctx, repository.QuestionFilter{
		Category: category,
		Checked:  &unchecked,
	})
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}

func (uc *QuestionUsecase) Get(ctx context.Context, id string) (*entity.Question, error) {
	return uc.questionRepo.Get(ctx, id)
}

// Review applies the reviewer's edits.
func (uc *QuestionUsecase) Review(ctx context.Context, id string, patch *entity.QuestionPatch) (*entity.Question, error) {
	if err := uc.validator.ValidateQuestionPatch(patch); err != nil {
		return nil, err
	}

	q, err := uc.questionRepo.Update(ctx, id, *patch)
	if err != nil {
		return nil, fmt.Errorf("review question: %w", err)
	}

	ctxzap.Info(ctx, "question reviewed",
		zap.String("question_id", q.ID),
		zap.Bool("checked", q.Checked),
		zap.Bool("is_wrong", q.IsWrong),
	)

	return q, nil
}

func (uc *QuestionUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.questionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	ctxzap.Info(ctx, "question deleted", zap.String("question_id", id))
	return nil
}

// Generate creates one question per selected context and stores the successful
// ones unchecked. Failed contexts are reported, not stored.
func (uc *QuestionUsecase) Generate(ctx context.Context, req *entity.GenerateQuestionsRequest) (*entity.GenerateQuestionsResponse, error) {
	ctx = logger.WithAction(ctx, "generate_questions")

	req.Normalize()
	if err := uc.validator.ValidateGenerateQuestions(req); err != nil {
		return nil, err
	}

	ctx = logger.AddFields(ctx, zap.String("category", req.Category))

	result, err := uc.generator.GenerateForInformations(ctx, req.Contexts)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	succeeded := result.Succeeded()
	records := make([]entity.Question, 0, len(succeeded))
	for _, outcome := range succeeded {
		records = append(records, toRecord(outcome, req.Category))
	}

	ids, err := uc.questionRepo.CreateMany(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("store generated questions: %w", err)
	}

	ctxzap.Info(ctx, "questions generated",
		zap.Int("requested", len(req.Contexts)),
		zap.Int("created", len(ids)),
		zap.Int("failed", len(result.Failures)),
		zap.Float64("total_cost", result.Stats.TotalCost),
	)

	failures := result.Failures
	if failures == nil {
		failures = []entity.ItemFailure{}
	}

	return &entity.GenerateQuestionsResponse{
		Message:  "Questions generated successfully",
		Count:    len(ids),
		IDs:      ids,
		Stats:    result.Stats,
		Failures: failures,
	}, nil
}

// Export renders the reviewed, non-wrong questions of a category.
func (uc *QuestionUsecase) Export(ctx context.Context, req *entity.ExportRequest) (*entity.ExportResult, error) {
	if err := uc.validator.ValidateExport(req); err != nil {
		return nil, err
	}

	checked := true
	questions, err := uc.questionRepo.List(ctx, repository.QuestionFilter{
		Category: req.Category,
		Checked:  &checked,
	})
	if err != nil {
		return nil, fmt.Errorf("list reviewed questions: %w", err)
	}

	usable := make([]*entity.Question, 0, len(questions))
	for _, q := range questions {
		if !q.IsWrong {
			usable = append(usable, q)
		}
	}

	f, err := uc.formatterFactory.Create(req.Format)
	if err != nil {
		return nil, err
	}

	content, err := f.Format(formatter.ExamSheet{
		Title:     entity.TopicName(req.Category),
		Questions: usable,
	})
	if err != nil {
		return nil, fmt.Errorf("format questions: %w", err)
	}

	ctxzap.Info(ctx, "questions exported",
		zap.String("category", req.Category),
		zap.String("format", string(req.Format)),
		zap.Int("count", len(usable)),
	)

	return &entity.ExportResult{
		Filename:    fmt.Sprintf("%s-%s%s", req.Category, time.Now().Format("20060102"), f.FileExtension()),
		ContentType: f.ContentType(),
		Content:     content,
	}, nil
}
