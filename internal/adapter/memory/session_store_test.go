package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Hour)

	_, err := store.Load(ctx, "c1")
	require.ErrorIs(t, err, port.ErrSessionNotFound)

	budget := int64(100)
	sess := domain.Session{
		ID:      "c1",
		Phase:   domain.PhaseGathering,
		Draft:   domain.Draft{Budget: &budget},
		History: []domain.Turn{{Role: "user", Content: "hi"}},
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, sess, *got)

	// Stored sessions do not alias the caller's values.
	*got.Draft.Budget = 5
	got.History[0].Content = "changed"
	again, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), *again.Draft.Budget)
	assert.Equal(t, "hi", again.History[0].Content)

	require.NoError(t, store.Delete(ctx, "c1"))
	_, err = store.Load(ctx, "c1")
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestSessionExpires(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Minute)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, domain.Session{ID: "c1"}))
	now = now.Add(2 * time.Minute)

	_, err := store.Load(ctx, "c1")
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestSaveSweepsExpiredSessions(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Minute)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, domain.Session{ID: "abandoned-1"}))
	require.NoError(t, store.Save(ctx, domain.Session{ID: "abandoned-2"}))
	assert.Equal(t, 2, store.Len())

	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Save(ctx, domain.Session{ID: "active"}))
	assert.Equal(t, 1, store.Len())

	_, err := store.Load(ctx, "active")
	assert.NoError(t, err)
}

func TestLock(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(0)

	unlock, err := store.Lock(ctx, "c1")
	require.NoError(t, err)

	_, err = store.Lock(ctx, "c1")
	require.ErrorIs(t, err, port.ErrConversationBusy)

	other, err := store.Lock(ctx, "c2")
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, unlock(ctx))
	require.NoError(t, unlock(ctx))

	again, err := store.Lock(ctx, "c1")
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}
