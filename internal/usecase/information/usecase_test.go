package information

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/validator"
	"go.uber.org/zap"
)

type memoryRepo struct {
	items map[string]*entity.Information
	clock time.Time
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: map[string]*entity.Information{}, clock: time.Unix(0, 0)}
}

func (r *memoryRepo) Create(_ context.Context, info entity.Information) (*entity.Information, error) {
	r.clock = r.clock.Add(time.Second)
	info.ID = uuid.NewString()
	info.CreatedAt = r.clock
	r.items[info.ID] = &info
	return &info, nil
}

func (r *memoryRepo) Get(_ context.Context, id string) (*entity.Information, error) {
	info, ok := r.items[id]
	if !ok {
		return nil, entity.ErrInformationNotFound
	}
	return info, nil
}

func (r *memoryRepo) List(_ context.Context, category string) ([]*entity.Information, error) {
	out := []*entity.Information{}
	for _, info := range r.items {
		if category == "" || info.Category == category {
			out = append(out, info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryRepo) Update(_ context.Context, info entity.Information) (*entity.Information, error) {
	existing, ok := r.items[info.ID]
	if !ok {
		return nil, entity.ErrInformationNotFound
	}
	existing.Text = info.Text
	existing.Category = info.Category
	return existing, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return entity.ErrInformationNotFound
	}
	delete(r.items, id)
	return nil
}

func newTestUsecase() *InformationUsecase {
	return NewUsecase(newMemoryRepo(), validator.NewValidator(), zap.NewNop())
}

func TestInformationLifecycle(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	first, err := uc.Create(ctx, &entity.CreateInformationRequest{Text: "  Malazgirt 1071 ", Category: "anadolu_selcuklu"})
	require.NoError(t, err)
	assert.Equal(t, "Malazgirt 1071", first.Text)

	second, err := uc.Create(ctx, &entity.CreateInformationRequest{Text: "Kösedağ 1243", Category: "anadolu_selcuklu"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &entity.CreateInformationRequest{Text: "Sümerler", Category: "ilk_cag"})
	require.NoError(t, err)

	list, err := uc.List(ctx, "anadolu_selcuklu")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	updated, err := uc.Update(ctx, &entity.UpdateInformationRequest{ID: first.ID, Text: "Malazgirt Savaşı", Category: "anadolu_selcuklu"})
	require.NoError(t, err)
	assert.Equal(t, "Malazgirt Savaşı", updated.Text)

	require.NoError(t, uc.Delete(ctx, first.ID))
	_, err = uc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, entity.ErrInformationNotFound)
}

func TestInformation_Validation(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	_, err := uc.Create(ctx, &entity.CreateInformationRequest{Text: "x", Category: "unknown"})
	assert.ErrorIs(t, err, entity.ErrInvalidCategory)

	_, err = uc.List(ctx, "unknown")
	assert.ErrorIs(t, err, entity.ErrInvalidCategory)

	err = uc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrInformationNotFound)
}
