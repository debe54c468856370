package question

import (
	"context"

	"github.com/umstad/quizgen/internal/entity"
)

type Generator interface {
	GenerateForInformations(ctx context.Context, informations []string) (*entity.InformationBatchResult, error)
}
