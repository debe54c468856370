package information

import (
	"context"

	"github.com/umstad/quizgen/internal/entity"
)

type InformationUsecase interface {
	Create(ctx context.Context, req *entity.CreateInformationRequest) (*entity.Information, error)
	List(ctx context.Context, category string) ([]*entity.Information, error)
	Get(ctx context.Context, id string) (*entity.Information, error)
	Update(ctx context.Context, req *entity.UpdateInformationRequest) (*entity.Information, error)
	Delete(ctx context.Context, id string) error
}
