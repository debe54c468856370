package information

import (
	"context"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/validator"
	"github.com/umstad/quizgen/internal/repository"
	"go.uber.org/zap"
)

// InformationUsecase manages the context passages questions are generated from.
type InformationUsecase struct {
	infoRepo  repository.InformationRepository
	validator *validator.Validator
	logger    *zap.Logger
}

func NewUsecase(
	infoRepo repository.InformationRepository,
	validator *validator.Validator,
	logger *zap.Logger,
) *InformationUsecase {
	return &InformationUsecase{
		infoRepo:  infoRepo,
		validator: validator,
		logger:    logger,
	}
}

func (uc *InformationUsecase) Create(ctx context.Context, req *entity.CreateInformationRequest) (*entity.Information, error) {
	if err := uc.validator.ValidateCreateInformation(req); err != nil {
		return nil, err
	}

	info, err := uc.infoRepo.Create(ctx, entity.Information{
		Text:     strings.TrimSpace(req.Text),
		Category: req.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("create information: %w", err)
	}

	ctxzap.Info(ctx, "information created",
		zap.String("information_id", info.ID),
		zap.String("category", info.Category),
	)

	return info, nil
}

// List returns informations newest first, optionally narrowed to a category.
func (uc *InformationUsecase) List(ctx context.Context, category string) ([]*entity.Information, error) {
	if category != "" {
		if err := uc.validator.ValidateCategory(category); err != nil {
			return nil, err
		}
	}

	infos, err := uc.infoRepo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list informations: %w", err)
	}

	return infos, nil
}

func (uc *InformationUsecase) Get(ctx context.Context, id string) (*entity.Information, error) {
	return uc.infoRepo.Get(ctx, id)
}

func (uc *InformationUsecase) Update(ctx context.Context, req *entity.UpdateInformationRequest) (*entity.Information, error) {
	if err := uc.validator.ValidateUpdateInformation(req); err != nil {
		return nil, err
	}

	info, err := uc.infoRepo.Update(ctx, entity.Information{
		ID:       req.ID,
		Text:     strings.TrimSpace(req.Text),
		Category: req.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("update information: %w", err)
	}

	ctxzap.Info(ctx, "information updated", zap.String("information_id", info.ID))

	return info, nil
}

func (uc *InformationUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.infoRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete information: %w", err)
	}

	ctxzap.Info(ctx, "information deleted", zap.String("information_id", id))
	return nil
}
