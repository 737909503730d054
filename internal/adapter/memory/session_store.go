// Package memory keeps builder sessions in process memory. Sessions are
// lost on restart; use the redis adapter to share them across instances.
package memory

import (
	"context"
	"sync"
	"time"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

type entry struct {
	session domain.Session
	expires time.Time
}

// SessionStore implements port.SessionStore with a map and a set of held
// conversation locks.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]entry
	locks    map[string]struct{}
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore returns an empty store. Sessions idle for longer than ttl
// are dropped; a non-positive ttl keeps them forever.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]entry),
		locks:    make(map[string]struct{}),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Load returns a copy of the session stored under id or
// port.ErrSessionNotFound once it has expired.
func (s *SessionStore) Load(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	if e.expired(s.now()) {
		delete(s.sessions, id)
		return nil, port.ErrSessionNotFound
	}
	sess := clone(e.session)
	return &sess, nil
}

// Save stores a copy of sess and drops every other expired session.
func (s *SessionStore) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.sessions {
		if e.expired(now) {
			delete(s.sessions, id)
		}
	}

	e := entry{session: clone(sess)}
	if s.ttl > 0 {
		e.expires = now.Add(s.ttl)
	}
	s.sessions[sess.ID] = e
	return nil
}

// Len reports how many sessions are held, expired or not.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Delete drops the session stored under id.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Lock marks the conversation as busy until the returned Unlock is called.
func (s *SessionStore) Lock(_ context.Context, id string) (port.Unlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, held := s.locks[id]; held {
		return nil, port.ErrConversationBusy
	}
	s.locks[id] = struct{}{}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			s.mu.Lock()
			delete(s.locks, id)
			s.mu.Unlock()
		})
		return nil
	}, nil
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

func clone(s domain.Session) domain.Session {
	s.Draft = s.Draft.Clone()
	s.History = append([]domain.Turn(nil), s.History...)
	return s
}
