package usecase

import (
	"context"

	"github.com/iho/minibank/internal/domain"
)

// AccountDirectory owns account number allocation and the mapping from
// number to account.
type AccountDirectory interface {
	Create(ctx context.Context) *domain.Account
	Get(ctx context.Context, id string) (*domain.Account, error)
}

// UserRepository defines data access for credentials.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
