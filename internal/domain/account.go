package domain

import (
	"sync"
	"time"
)

// Account holds a balance in integer minor units together with its
// append-only entry log. The mutex guards balance, sequence and entries
// as a single unit so no caller can observe a balance that disagrees
// with the log.
type Account struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	balance  int64
	sequence int64
	entries  []Entry
}

// NewAccount creates a zero-balance account with an empty log.
func NewAccount(id string, now time.Time) *Account {
	return &Account{ID: id, CreatedAt: now}
}

// Deposit credits amount and appends a DEPOSIT entry.
func (a *Account) Deposit(entryID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.applyLocked(Entry{ID: entryID, Kind: EntryDeposit, Amount: amount})
	return nil
}

// Withdraw debits amount and appends a WITHDRAWAL entry. Overdrafts are
// rejected with ErrInsufficientFunds and leave the account untouched.
func (a *Account) Withdraw(entryID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.balance {
		return ErrInsufficientFunds
	}

	a.applyLocked(Entry{ID: entryID, Kind: EntryWithdrawal, Amount: amount})
	return nil
}

// BalanceSnapshot returns the balance as of call time.
func (a *Account) BalanceSnapshot() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// History returns a copy of the entry log in insertion order. The copy
// does not see later operations.
func (a *Account) History() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// applyLocked stamps the entry, appends it and moves the balance.
// Caller must hold a.mu.
func (a *Account) applyLocked(e Entry) {
	a.sequence++
	e.AccountID = a.ID
	e.Sequence = a.sequence
	e.CreatedAt = time.Now().UTC()

	a.entries = append(a.entries, e)
	a.balance += e.Signed()
}
