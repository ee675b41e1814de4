package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/pawhaven/pawhaven/internal/domains/accounts/domain"
	"github.com/pawhaven/pawhaven/internal/domains/accounts/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory account store used for demos/tests.
type Repository struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	nextID int64
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{users: map[string]*domain.User{}}
}

// Save inserts or replaces a user keyed by username, assigning an id on first insert.
func (r *Repository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(user.Username)
	if existing, ok := r.users[key]; ok {
		user.ID = existing.ID
	} else if user.ID == 0 {
		r.nextID++
		user.ID = r.nextID
	} else if user.ID > r.nextID {
		r.nextID = user.ID
	}
	clone := *user
	r.users[key] = &clone
	copy := clone
	return &copy, nil
}

// GetByUsername fetches a user by username.
func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, ports.ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

// GetByID fetches a user by identifier.
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == id {
			copy := *user
			return &copy, nil
		}
	}
	return nil, ports.ErrUserNotFound
}

// Delete removes a user by username.
func (r *Repository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(username))
	if _, ok := r.users[key]; !ok {
		return ports.ErrUserNotFound
	}
	delete(r.users, key)
	return nil
}

// List returns all users.
func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		copy := *user
		users = append(users, &copy)
	}
	return users, nil
}
