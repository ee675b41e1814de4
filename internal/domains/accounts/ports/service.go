package ports

import (
	"context"

	"github.com/pawhaven/pawhaven/internal/domains/accounts/domain"
)

// LoginResult carries the authenticated user and the issued session token.
type LoginResult struct {
	User  *domain.User
	Token string
}

// Service defines the account use cases exposed to adapters (inbound/driving port).
type Service interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
