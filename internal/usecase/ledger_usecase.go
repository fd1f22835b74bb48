package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
)

// LedgerUseCase is the facade the shell (or any future transport) talks
// to. It resolves account numbers through the directory and delegates
// the balance arithmetic to the domain primitives.
type LedgerUseCase struct {
	directory AccountDirectory
	idGen     IDGenerator
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(directory AccountDirectory, idGen IDGenerator, m *metrics.Metrics, log zerolog.Logger) *LedgerUseCase {
	return &LedgerUseCase{
		directory: directory,
		idGen:     idGen,
		metrics:   m,
		log:       log,
	}
}

// CreateAccount allocates a fresh zero-balance account and returns its
// number.
func (uc *LedgerUseCase) CreateAccount(ctx context.Context) string {
	account := uc.directory.Create(ctx)

	uc.metrics.AccountsCreated.Inc()
	uc.log.Info().Str("account_id", account.ID).Msg("account created")

	return account.ID
}

// Deposit credits amount (minor units) to the account.
func (uc *LedgerUseCase) Deposit(ctx context.Context, accountID string, amount int64) error {
	account, err := uc.directory.Get(ctx, accountID)
	if err != nil {
		return err
	}

	if err := account.Deposit(uc.idGen.Generate(), amount); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("deposit", errLabel(err)).Inc()
		return err
	}

	uc.metrics.AccountOperations.WithLabelValues("deposit").Inc()
	uc.log.Debug().Str("account_id", accountID).Int64("amount", amount).Msg("deposit applied")

	return nil
}

// Withdraw debits amount (minor units) from the account.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, accountID string, amount int64) error {
	account, err := uc.directory.Get(ctx, accountID)
	if err != nil {
		return err
	}

	if err := account.Withdraw(uc.idGen.Generate(), amount); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("withdraw", errLabel(err)).Inc()
		return err
	}

	uc.metrics.AccountOperations.WithLabelValues("withdraw").Inc()
	uc.log.Debug().Str("account_id", accountID).Int64("amount", amount).Msg("withdrawal applied")

	return nil
}

// Transfer moves amount between two accounts atomically.
func (uc *LedgerUseCase) Transfer(ctx context.Context, fromID, toID string, amount int64) error {
	from, err := uc.directory.Get(ctx, fromID)
	if err != nil {
		return err
	}

	to, err := uc.directory.Get(ctx, toID)
	if err != nil {
		return err
	}

	if err := domain.TransferFunds(from, to, uc.idGen.Generate(), uc.idGen.Generate(), amount); err != nil {
		uc.metrics.TransferErrors.WithLabelValues(errLabel(err)).Inc()
		return err
	}

	uc.metrics.TransfersCreated.Inc()
	uc.metrics.TransferAmount.Observe(float64(amount))
	uc.log.Debug().
		Str("from_account_id", fromID).
		Str("to_account_id", toID).
		Int64("amount", amount).
		Msg("transfer applied")

	return nil
}

// Balance returns the account balance in minor units as of call time.
func (uc *LedgerUseCase) Balance(ctx context.Context, accountID string) (int64, error) {
	account, err := uc.directory.Get(ctx, accountID)
	if err != nil {
		return 0, err
	}

	return account.BalanceSnapshot(), nil
}

// History returns a snapshot of the account's entries in the order the
// operations were applied.
func (uc *LedgerUseCase) History(ctx context.Context, accountID string) ([]domain.Entry, error) {
	account, err := uc.directory.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return account.History(), nil
}

func errLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	default:
		return "internal"
	}
}
