package domain

import "time"

// EntryKind classifies a ledger entry by its balance effect.
type EntryKind string

const (
	EntryDeposit     EntryKind = "DEPOSIT"
	EntryWithdrawal  EntryKind = "WITHDRAWAL"
	EntryTransferOut EntryKind = "TRANSFER_OUT"
	EntryTransferIn  EntryKind = "TRANSFER_IN"
)

// Entry represents a single immutable ledger entry on an account.
// Amount is always positive, in integer minor units; the sign comes
// from the kind. CounterpartyID is set only on transfer entries.
type Entry struct {
	CreatedAt      time.Time
	ID             string
	AccountID      string
	CounterpartyID string
	Kind           EntryKind
	Amount         int64
	Sequence       int64
}

// Signed returns the amount with its balance effect applied: deposits
// and transfer-ins positive, withdrawals and transfer-outs negative.
func (e Entry) Signed() int64 {
	switch e.Kind {
	case EntryWithdrawal, EntryTransferOut:
		return -e.Amount
	default:
		return e.Amount
	}
}
