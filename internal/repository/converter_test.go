package repository

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umstad/quizgen/internal/entity"
)

func TestParseID(t *testing.T) {
	id := uuid.New()

	parsed, err := parseID(id.String(), entity.ErrQuestionNotFound)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, id.String(), toUUIDString(parsed))

	_, err = parseID("not-a-uuid", entity.ErrQuestionNotFound)
	assert.True(t, errors.Is(err, entity.ErrQuestionNotFound))
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil(nil))
	assert.Equal(t, []string{"a"}, nonNil([]string{"a"}))
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}
