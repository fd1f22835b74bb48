package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/minibank/internal/domain"
)

// AccountDirectory is the in-memory registry of accounts keyed by
// account number. Numbers are allocated from a dedicated counter so
// they are never reused, regardless of map contents.
type AccountDirectory struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[string]*domain.Account
}

// NewAccountDirectory creates an empty AccountDirectory.
func NewAccountDirectory() *AccountDirectory {
	return &AccountDirectory{
		accounts: make(map[string]*domain.Account),
	}
}

// Create allocates the next account number and registers a zero-balance
// account under it.
func (d *AccountDirectory) Create(_ context.Context) *domain.Account {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	account := domain.NewAccount(fmt.Sprintf("ACC%d", d.nextID), time.Now().UTC())
	d.accounts[account.ID] = account

	return account
}

// Get looks up an account by number.
func (d *AccountDirectory) Get(_ context.Context, id string) (*domain.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	account, ok := d.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return account, nil
}
