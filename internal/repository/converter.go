package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/umstad/quizgen/internal/entity"
)

const informationColumns = `id, text, category, created_at`

const questionColumns = `id, context, information, question, answers, correct_answer,
	preferred_question, preferred_answers, preferred_correct_answer,
	score, is_wrong, checked, category, created_at`

// parseID converts a path identifier into a UUID parameter. Malformed ids
// can never match a row, so they surface as notFound.
func parseID(id string, notFound error) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("%w: %s", notFound, id)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func toUUIDString(id pgtype.UUID) string {
	return uuid.UUID(id.Bytes).String()
}

func scanInformation(row pgx.Row) (*entity.Information, error) {
	var (
		id   pgtype.UUID
		info entity.Information
	)

	if err := row.Scan(&id, &info.Text, &info.Category, &info.CreatedAt); err != nil {
		return nil, err
	}

	info.ID = toUUIDString(id)
	return &info, nil
}

func scanQuestion(row pgx.Row) (*entity.Question, error) {
	var (
		id pgtype.UUID
		q  entity.Question
	)

	err := row.Scan(
		&id,
		&q.Context,
		&q.Information,
		&q.Question,
		&q.Answers,
		&q.CorrectAnswer,
		&q.PreferredQuestion,
		&q.PreferredAnswers,
		&q.PreferredCorrectAnswer,
		&q.Score,
		&q.IsWrong,
		&q.Checked,
		&q.Category,
		&q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.ID = toUUIDString(id)
	return &q, nil
}
