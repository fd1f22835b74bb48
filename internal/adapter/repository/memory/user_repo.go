package memory

import (
	"context"
	"sync"

	"github.com/iho/minibank/internal/domain"
)

// UserRepository is the in-memory credential store keyed by username.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

// NewUserRepository creates an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*domain.User),
	}
}

// Create stores a new user, rejecting duplicate usernames.
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUsernameTaken
	}

	r.users[user.Username] = user
	return nil
}

// GetByUsername looks up a user by username.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}
