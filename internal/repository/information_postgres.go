package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/umstad/quizgen/internal/entity"
)

// InformationRepository defines the interface for information persistence
type InformationRepository interface {
	Create(ctx context.Context, info entity.Information) (*entity.Information, error)
	Get(ctx context.Context, id string) (*entity.Information, error)
	// List returns informations newest first; an empty category lists all.
	List(ctx context.Context, category string) ([]*entity.Information, error)
	Update(ctx context.Context, info entity.Information) (*entity.Information, error)
	Delete(ctx context.Context, id string) error
}

var _ InformationRepository = &InformationPostgres{}

type InformationPostgres struct {
	db *pgxpool.Pool
}

func NewInformationPostgres(db *pgxpool.Pool) *InformationPostgres {
	return &InformationPostgres{db: db}
}

func (r *InformationPostgres) Create(ctx context.Context, info entity.Information) (*entity.Information, error) {
	id := uuid.New()
	if info.ID != "" {
		parsed, err := uuid.Parse(info.ID)
		if err != nil {
			return nil, fmt.Errorf("parse information ID: %w", err)
		}
		id = parsed
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO informations (id, text, category)
		VALUES ($1, $2, $3)
		RETURNING `+informationColumns,
		pgtype.UUID{Bytes: id, Valid: true}, info.Text, info.Category,
	)

	created, err := scanInformation(row)
	if err != nil {
		return nil, fmt.Errorf("create information: %w", err)
	}

	return created, nil
}

func (r *InformationPostgres) Get(ctx context.Context, id string) (*entity.Information, error) {
	infoID, err := parseID(id, entity.ErrInformationNotFound)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `SELECT `+informationColumns+` FROM informations WHERE id = $1`, infoID)

	info, err := scanInformation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrInformationNotFound
		}
		return nil, fmt.Errorf("get information: %w", err)
	}

	return info, nil
}

func (r *InformationPostgres) List(ctx context.Context, category string) ([]*entity.Information, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+informationColumns+`
		FROM informations
		WHERE $1 = '' OR category = $1
		ORDER BY created_at DESC`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("list informations: %w", err)
	}
	defer rows.Close()

	infos := make([]*entity.Information, 0)
	for rows.Next() {
		info, err := scanInformation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan information: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list informations: %w", err)
	}

	return infos, nil
}

func (r *InformationPostgres) Update(ctx context.Context, info entity.Information) (*entity.Information, error) {
	infoID, err := parseID(info.ID, entity.ErrInformationNotFound)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		UPDATE informations
		SET text = $2, category = $3
		WHERE id = $1
		RETURNING `+informationColumns,
		infoID, info.Text, info.Category,
	)

	updated, err := scanInformation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrInformationNotFound
		}
		return nil, fmt.Errorf("update information: %w", err)
	}

	return updated, nil
}

func (r *InformationPostgres) Delete(ctx context.Context, id string) error {
	infoID, err := parseID(id, entity.ErrInformationNotFound)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM informations WHERE id = $1`, infoID)
	if err != nil {
		return fmt.Errorf("delete information: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrInformationNotFound
	}

	return nil
}
