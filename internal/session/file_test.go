package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-portal/internal/entities"
	apperrors "business-portal/pkg/errors"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), DefaultSnapshotName))
}

func TestFileStore_MissingSnapshot(t *testing.T) {
	store := newFileStore(t)

	_, err := store.Get(context.Background(), "any")

	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newFileStore(t)
	snap := Snapshot{
		Token: "token-123",
		Identity: &entities.Identity{
			ID:    1,
			Name:  "Иван",
			Email: "ivan@example.com",
			Type:  entities.TypeCustomer,
		},
	}

	require.NoError(t, store.Set(context.Background(), "sid", snap))

	got, err := store.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, "token-123", got.Token)
	require.NotNil(t, got.Identity)
	assert.Equal(t, entities.TypeCustomer, got.Identity.Type)
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	// снимок читается новым экземпляром хранилища — рестарт процесса
	path := filepath.Join(t.TempDir(), DefaultSnapshotName)
	first := NewFileStore(path)
	require.NoError(t, first.Set(context.Background(), "sid", Snapshot{Token: "token-123"}))

	second := NewFileStore(path)
	got, err := second.Get(context.Background(), "sid")

	require.NoError(t, err)
	assert.Equal(t, "token-123", got.Token)
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	store := newFileStore(t)
	require.NoError(t, store.Set(context.Background(), "sid", Snapshot{Token: "token-123"}))

	require.NoError(t, store.Clear(context.Background(), "sid"))
	require.NoError(t, store.Clear(context.Background(), "sid"))

	_, err := store.Get(context.Background(), "sid")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
