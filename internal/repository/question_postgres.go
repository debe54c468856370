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

// QuestionFilter narrows List. A nil Checked matches both states.
type QuestionFilter struct {
	Category string
	Checked  *bool
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// CreateMany stores the batch and returns the assigned ids in input order.
	CreateMany(ctx context.Context, questions []entity.Question) ([]string, error)
	Get(ctx context.Context, id string) (*entity.Question, error)
	List(ctx context.Context, filter QuestionFilter) ([]*entity.Question, error)
	Update(ctx context.Context, id string, patch entity.QuestionPatch) (*entity.Question, error)
	Delete(ctx context.Context, id string) error
}

var _ QuestionRepository = &QuestionPostgres{}

type QuestionPostgres struct {
	db *pgxpool.Pool
}

func NewQuestionPostgres(db *pgxpool.Pool) *QuestionPostgres {
	return &QuestionPostgres{db: db}
}

var questionCopyColumns = []string{
	"id", "context", "information", "question", "answers", "correct_answer",
	"preferred_question", "preferred_answers", "preferred_correct_answer",
	"score", "is_wrong", "checked", "category",
}

func (r *QuestionPostgres) CreateMany(ctx context.Context, questions []entity.Question) ([]string, error) {
	if len(questions) == 0 {
		return []string{}, nil
	}

	ids := make([]uuid.UUID, len(questions))
	for i := range ids {
		ids[i] = uuid.New()
	}

	source := pgx.CopyFromSlice(len(questions), func(i int) ([]any, error) {
		q := questions[i]
		return []any{
			pgtype.UUID{Bytes: ids[i], Valid: true},
			q.Context,
			q.Information,
			q.Question,
			nonNil(q.Answers),
			q.CorrectAnswer,
			q.PreferredQuestion,
			nonNil(q.PreferredAnswers),
			q.PreferredCorrectAnswer,
			q.Score,
			q.IsWrong,
			q.Checked,
			q.Category,
		}, nil
	})

	count, err := r.db.CopyFrom(ctx, pgx.Identifier{"questions"}, questionCopyColumns, source)
	if err != nil {
		return nil, fmt.Errorf("create questions: %w", err)
	}
	if int(count) != len(questions) {
		return nil, fmt.Errorf("create questions: copied %d of %d rows", count, len(questions))
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out, nil
}

func (r *QuestionPostgres) Get(ctx context.Context, id string) (*entity.Question, error) {
	questionID, err := parseID(id, entity.ErrQuestionNotFound)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, questionID)

	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	return q, nil
}

func (r *QuestionPostgres) List(ctx context.Context, filter QuestionFilter) ([]*entity.Question, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE category = $1
		  AND ($2::boolean IS NULL OR checked = $2)
		ORDER BY created_at DESC`,
		filter.Category, filter.Checked,
	)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]*entity.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}

func (r *QuestionPostgres) Update(ctx context.Context, id string, patch entity.QuestionPatch) (*entity.Question, error) {
	questionID, err := parseID(id, entity.ErrQuestionNotFound)
	if err != nil {
		return nil, err
	}

	var preferredAnswers []string
	if patch.PreferredAnswers != nil {
		preferredAnswers = nonNil(*patch.PreferredAnswers)
	}

	row := r.db.QueryRow(ctx, `
		UPDATE questions SET
			preferred_question = COALESCE($2::text, preferred_question),
			preferred_answers = COALESCE($3::text[], preferred_answers),
			preferred_correct_answer = COALESCE($4::integer, preferred_correct_answer),
			score = COALESCE($5::integer, score),
			is_wrong = COALESCE($6::boolean, is_wrong),
			checked = COALESCE($7::boolean, checked)
		WHERE id = $1
		RETURNING `+questionColumns,
		questionID,
		patch.PreferredQuestion,
		preferredAnswers,
		patch.PreferredCorrectAnswer,
		patch.Score,
		patch.IsWrong,
		patch.Checked,
	)

	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("update question: %w", err)
	}

	return q, nil
}

func (r *QuestionPostgres) Delete(ctx context.Context, id string) error {
	questionID, err := parseID(id, entity.ErrQuestionNotFound)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, questionID)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrQuestionNotFound
	}

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
