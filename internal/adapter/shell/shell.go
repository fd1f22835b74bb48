package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// Shell drives the interactive banking menu over a reader/writer pair.
// It is a thin adapter: every invariant lives in domain and usecase,
// the shell only parses lines and renders results.
type Shell struct {
	ledger *usecase.LedgerUseCase
	users  *usecase.UserUseCase
	in     *bufio.Scanner
	out    io.Writer
	log    zerolog.Logger
}

// New creates a Shell reading from in and writing to out.
func New(ledger *usecase.LedgerUseCase, users *usecase.UserUseCase, in io.Reader, out io.Writer, log zerolog.Logger) *Shell {
	return &Shell{
		ledger: ledger,
		users:  users,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
	}
}

// Run executes the top-level menu loop until the user exits or input is
// exhausted.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to minibank.")

	for {
		fmt.Fprint(s.out, "\n1. Register\n2. Login\n3. Exit\n> ")

		choice, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}

		switch choice {
		case "1":
			if !s.register(ctx) {
				return s.in.Err()
			}
		case "2":
			if !s.login(ctx) {
				return s.in.Err()
			}
		case "3":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
	}
}

// register prompts for credentials and registers them. It returns false
// when input is exhausted.
func (s *Shell) register(ctx context.Context) bool {
	username, ok := s.prompt("Username: ")
	if !ok {
		return false
	}

	secret, ok := s.prompt("Password: ")
	if !ok {
		return false
	}

	err := s.users.Register(ctx, usecase.RegisterInput{Username: username, Secret: secret})
	if err != nil {
		s.renderError(err)
		return true
	}

	fmt.Fprintln(s.out, "User registered.")
	return true
}

// login prompts for credentials and, on success, enters the account
// session menu. It returns false when input is exhausted.
func (s *Shell) login(ctx context.Context) bool {
	username, ok := s.prompt("Username: ")
	if !ok {
		return false
	}

	secret, ok := s.prompt("Password: ")
	if !ok {
		return false
	}

	if !s.users.Authenticate(ctx, username, secret) {
		fmt.Fprintln(s.out, "Invalid username or password.")
		return true
	}

	fmt.Fprintln(s.out, "Login successful.")
	s.log.Info().Str("username", username).Msg("session started")

	return s.session(ctx)
}

func (s *Shell) session(ctx context.Context) bool {
	for {
		fmt.Fprint(s.out, "\n1. Create Account\n2. Deposit\n3. Withdraw\n4. Transfer\n5. Balance\n6. History\n7. Logout\n> ")

		choice, ok := s.readLine()
		if !ok {
			return false
		}

		cont := true

		switch choice {
		case "1":
			accountID := s.ledger.CreateAccount(ctx)
			fmt.Fprintf(s.out, "Account created: %s\n", accountID)
		case "2":
			cont = s.deposit(ctx)
		case "3":
			cont = s.withdraw(ctx)
		case "4":
			cont = s.transfer(ctx)
		case "5":
			cont = s.balance(ctx)
		case "6":
			cont = s.history(ctx)
		case "7":
			fmt.Fprintln(s.out, "Logged out.")
			return true
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}

		if !cont {
			return false
		}
	}
}

func (s *Shell) deposit(ctx context.Context) bool {
	accountID, ok := s.prompt("Account number: ")
	if !ok {
		return false
	}

	amount, ok, valid := s.promptAmount("Amount to deposit: ")
	if !ok {
		return false
	}
	if !valid {
		return true
	}

	if err := s.ledger.Deposit(ctx, accountID, amount); err != nil {
		s.renderError(err)
		return true
	}

	fmt.Fprintf(s.out, "Deposited: %s\n", domain.FormatAmount(amount))
	return true
}

func (s *Shell) withdraw(ctx context.Context) bool {
	accountID, ok := s.prompt("Account number: ")
	if !ok {
		return false
	}

	amount, ok, valid := s.promptAmount("Amount to withdraw: ")
	if !ok {
		return false
	}
	if !valid {
		return true
	}

	if err := s.ledger.Withdraw(ctx, accountID, amount); err != nil {
		s.renderError(err)
		return true
	}

	fmt.Fprintf(s.out, "Withdrew: %s\n", domain.FormatAmount(amount))
	return true
}

func (s *Shell) transfer(ctx context.Context) bool {
	fromID, ok := s.prompt("Source account number: ")
	if !ok {
		return false
	}

	toID, ok := s.prompt("Destination account number: ")
	if !ok {
		return false
	}

	amount, ok, valid := s.promptAmount("Amount to transfer: ")
	if !ok {
		return false
	}
	if !valid {
		return true
	}

	if err := s.ledger.Transfer(ctx, fromID, toID, amount); err != nil {
		s.renderError(err)
		return true
	}

	fmt.Fprintf(s.out, "Transferred: %s\n", domain.FormatAmount(amount))
	return true
}

func (s *Shell) balance(ctx context.Context) bool {
	accountID, ok := s.prompt("Account number: ")
	if !ok {
		return false
	}

	balance, err := s.ledger.Balance(ctx, accountID)
	if err != nil {
		s.renderError(err)
		return true
	}

	fmt.Fprintf(s.out, "Balance: %s\n", domain.FormatAmount(balance))
	return true
}

func (s *Shell) history(ctx context.Context) bool {
	accountID, ok := s.prompt("Account number: ")
	if !ok {
		return false
	}

	entries, err := s.ledger.History(ctx, accountID)
	if err != nil {
		s.renderError(err)
		return true
	}

	fmt.Fprintln(s.out, "Transaction history:")
	for _, e := range entries {
		fmt.Fprintln(s.out, formatEntry(e))
	}

	return true
}

// promptAmount reads a major-unit amount string and converts it to
// minor units. The third result is false when the input did not parse;
// the error is already rendered in that case.
func (s *Shell) promptAmount(label string) (int64, bool, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return 0, false, false
	}

	amount, err := domain.ParseAmount(raw)
	if err != nil {
		s.renderError(err)
		return 0, true, false
	}

	return amount, true, true
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) renderError(err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		fmt.Fprintln(s.out, "Account not found.")
	case errors.Is(err, domain.ErrInsufficientFunds):
		fmt.Fprintln(s.out, "Insufficient funds.")
	case errors.Is(err, domain.ErrSameAccount):
		fmt.Fprintln(s.out, "Source and destination accounts must differ.")
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrMalformedAmount):
		fmt.Fprintln(s.out, "Invalid amount.")
	case errors.Is(err, domain.ErrUsernameTaken):
		fmt.Fprintln(s.out, "Username already exists.")
	case errors.Is(err, domain.ErrInvalidUsername):
		fmt.Fprintln(s.out, "Invalid username.")
	case errors.Is(err, domain.ErrInvalidSecret):
		fmt.Fprintln(s.out, "Invalid password.")
	default:
		s.log.Error().Err(err).Msg("unexpected shell error")
		fmt.Fprintln(s.out, "Something went wrong.")
	}
}

func formatEntry(e domain.Entry) string {
	line := fmt.Sprintf("%s  %-12s %10s", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Kind, domain.FormatAmount(e.Amount))
	if e.CounterpartyID != "" {
		line += fmt.Sprintf("  (counterparty %s)", e.CounterpartyID)
	}

	return line
}
