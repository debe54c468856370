package question

import (
	"context"

	"github.com/umstad/quizgen/internal/entity"
)

type QuestionUsecase interface {
	List(ctx context.Context, category string) ([]*entity.Question, error)
	Get(ctx context.Context, id string) (*entity.Question, error)
	Review(ctx context.Context, id string, patch *entity.QuestionPatch) (*entity.Question, error)
	Delete(ctx context.Context, id string) error
	Generate(ctx context.Context, req *entity.GenerateQuestionsRequest) (*entity.GenerateQuestionsResponse, error)
	Export(ctx context.Context, req *entity.ExportRequest) (*entity.ExportResult, error)
}
