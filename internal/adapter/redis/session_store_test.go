package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client, time.Hour, time.Second)

	_, err := store.Load(ctx, "c1")
	require.ErrorIs(t, err, port.ErrSessionNotFound)

	objective := domain.ObjectiveLeads
	sess := domain.Session{
		ID:        "c1",
		Phase:     domain.PhaseGathering,
		Draft:     domain.Draft{Objective: &objective, ObjectiveText: "generate leads"},
		History:   []domain.Turn{{Role: "user", Content: "leads please"}},
		UpdatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(ctx, sess))
	assert.True(t, mr.Exists("builder:session:c1"))
	assert.Equal(t, time.Hour, mr.TTL("builder:session:c1"))

	got, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, sess, *got)

	require.NoError(t, store.Delete(ctx, "c1"))
	_, err = store.Load(ctx, "c1")
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestSessionExpires(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client, time.Minute, time.Second)

	require.NoError(t, store.Save(ctx, domain.Session{ID: "c1"}))
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "c1")
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestLock(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client, time.Hour, 10*time.Second)

	unlock, err := store.Lock(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("lock:builder:session:c1"))

	_, err = store.Lock(ctx, "c1")
	require.ErrorIs(t, err, port.ErrConversationBusy)

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists("lock:builder:session:c1"))

	again, err := store.Lock(ctx, "c1")
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}

func TestLockExpiresAndStaleUnlockIsHarmless(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client, time.Hour, 5*time.Second)

	stale, err := store.Lock(ctx, "c1")
	require.NoError(t, err)
	mr.FastForward(6 * time.Second)

	fresh, err := store.Lock(ctx, "c1")
	require.NoError(t, err)

	// The first holder's lease expired; releasing it must not free the
	// lock now held by someone else.
	require.NoError(t, stale(ctx))
	_, err = store.Lock(ctx, "c1")
	require.ErrorIs(t, err, port.ErrConversationBusy)

	require.NoError(t, fresh(ctx))
}
