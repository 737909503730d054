package port

import (
	"context"

	"adcraft/internal/core/domain"
)

// Unlock releases a conversation lock acquired with SessionStore.Lock.
type Unlock func(ctx context.Context) error

// SessionStore keeps server-side builder conversations between turns.
type SessionStore interface {
	// Load returns the session or ErrSessionNotFound.
	Load(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, s domain.Session) error
	Delete(ctx context.Context, id string) error
	// Lock takes the per-conversation lock. It does not wait: a lock held
	// by another turn yields ErrConversationBusy.
	Lock(ctx context.Context, id string) (Unlock, error)
}
