// Package redis stores builder sessions in Redis so conversations survive
// restarts and can be served by any instance.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

const (
	sessionPrefix = "builder:session:"
	lockPrefix    = "lock:builder:session:"
)

// releaseScript deletes the lock only while the caller still owns it.
var releaseScript = goredis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

// SessionStore implements port.SessionStore. Sessions are stored as JSON
// and expire after sessionTTL of inactivity; locks use SET NX with lockTTL
// so a crashed turn cannot hold a conversation forever.
type SessionStore struct {
	client     goredis.UniversalClient
	sessionTTL time.Duration
	lockTTL    time.Duration
}

// NewSessionStore returns a store using client.
func NewSessionStore(client goredis.UniversalClient, sessionTTL, lockTTL time.Duration) *SessionStore {
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	return &SessionStore{client: client, sessionTTL: sessionTTL, lockTTL: lockTTL}
}

// Load returns the session stored under id or port.ErrSessionNotFound.
func (s *SessionStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, port.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	var sess domain.Session
	if err = json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &sess, nil
}

// Save stores sess as JSON and resets its TTL.
func (s *SessionStore) Save(ctx context.Context, sess domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err = s.client.Set(ctx, sessionPrefix+sess.ID, raw, s.sessionTTL).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", sess.ID, err)
	}
	return nil
}

// Delete drops the session stored under id.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionPrefix+id).Err()
}

// Lock acquires the conversation lock with a random owner token.
func (s *SessionStore) Lock(ctx context.Context, id string) (port.Unlock, error) {
	key := lockPrefix + id
	owner := uuid.NewString()
	ok, err := s.client.SetNX(ctx, key, owner, s.lockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, port.ErrConversationBusy
	}
	return func(ctx context.Context) error {
		return releaseScript.Run(ctx, s.client, []string{key}, owner).Err()
	}, nil
}
