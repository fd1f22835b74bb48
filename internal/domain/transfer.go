package domain

// TransferFunds moves amount from src to dst as one atomic step.
//
// Both account locks are taken in ascending ID order so opposing
// transfers between the same pair cannot deadlock. Either the debit and
// the credit both happen, recording exactly one TRANSFER_OUT entry on
// src and one TRANSFER_IN entry on dst, or neither does and no entries
// are appended.
func TransferFunds(src, dst *Account, outEntryID, inEntryID string, amount int64) error {
	if src == nil || dst == nil {
		return ErrAccountNotFound
	}

	if src.ID == dst.ID {
		return ErrSameAccount
	}

	if amount <= 0 {
		return ErrInvalidAmount
	}

	first, second := src, dst
	if second.ID < first.ID {
		first, second = second, first
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if amount > src.balance {
		return ErrInsufficientFunds
	}

	src.applyLocked(Entry{ID: outEntryID, Kind: EntryTransferOut, Amount: amount, CounterpartyID: dst.ID})
	dst.applyLocked(Entry{ID: inEntryID, Kind: EntryTransferIn, Amount: amount, CounterpartyID: src.ID})

	return nil
}
