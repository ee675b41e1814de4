package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound signals an unknown or already-removed session token.
var ErrSessionNotFound = errors.New("session not found")

// Session ties an issued cookie token to an authenticated account.
type Session struct {
	Token     string
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its deadline.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !s.ExpiresAt.After(now)
}

// SessionStore abstracts token-keyed session persistence.
type SessionStore interface {
	Save(ctx context.Context, session Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) error
}
