package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/minibank/internal/adapter/repository/memory"
	"github.com/iho/minibank/internal/adapter/shell"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

var testMetrics = metrics.New()

func runScript(t *testing.T, script string) string {
	t.Helper()

	ledger := usecase.NewLedgerUseCase(
		memory.NewAccountDirectory(),
		memory.NewULIDGenerator(),
		testMetrics,
		zerolog.Nop(),
	)
	users := usecase.NewUserUseCase(memory.NewUserRepository(), testMetrics, zerolog.Nop())

	var out bytes.Buffer
	sh := shell.New(ledger, users, strings.NewReader(script), &out, zerolog.Nop())

	require.NoError(t, sh.Run(context.Background()))

	return out.String()
}

func TestShell_RegisterLoginAndBank(t *testing.T) {
	script := strings.Join([]string{
		"1",       // register
		"alice",   // username
		"hunter2", // password
		"2",       // login
		"alice",
		"hunter2",
		"1",     // create account
		"2",     // deposit
		"ACC1",  // account number
		"5.00",  // amount
		"5",     // balance
		"ACC1",
		"1",     // create second account
		"4",     // transfer
		"ACC1",  // source
		"ACC2",  // destination
		"2.00",  // amount
		"6",     // history
		"ACC1",
		"7", // logout
		"3", // exit
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, "User registered.")
	assert.Contains(t, out, "Login successful.")
	assert.Contains(t, out, "Account created: ACC1")
	assert.Contains(t, out, "Account created: ACC2")
	assert.Contains(t, out, "Deposited: 5.00")
	assert.Contains(t, out, "Balance: 5.00")
	assert.Contains(t, out, "Transferred: 2.00")
	assert.Contains(t, out, "TRANSFER_OUT")
	assert.Contains(t, out, "counterparty ACC2")
	assert.Contains(t, out, "Logged out.")
	assert.Contains(t, out, "Goodbye.")
}

func TestShell_RejectsBadLogin(t *testing.T) {
	script := strings.Join([]string{
		"2", // login without registering
		"ghost",
		"boo",
		"3", // exit
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, "Invalid username or password.")
	assert.NotContains(t, out, "Login successful.")
}

func TestShell_RendersLedgerErrors(t *testing.T) {
	script := strings.Join([]string{
		"1", "alice", "pw",
		"2", "alice", "pw",
		"1",                         // ACC1
		"3", "ACC1", "1.00",         // withdraw from empty account
		"2", "ACC_UNKNOWN", "1.00",  // deposit to unknown account
		"2", "ACC1", "1.005",        // malformed amount
		"4", "ACC1", "ACC1", "1.00", // self transfer
		"7",
		"3",
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, "Insufficient funds.")
	assert.Contains(t, out, "Account not found.")
	assert.Contains(t, out, "Invalid amount.")
	assert.Contains(t, out, "Source and destination accounts must differ.")
}

func TestShell_DuplicateRegistration(t *testing.T) {
	script := strings.Join([]string{
		"1", "alice", "pw",
		"1", "alice", "pw2",
		"3",
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, "Username already exists.")
}

func TestShell_InvalidMenuOption(t *testing.T) {
	script := "9\n3\n"

	out := runScript(t, script)

	assert.Contains(t, out, "Invalid option.")
	assert.Contains(t, out, "Goodbye.")
}

func TestShell_StopsCleanlyOnEOF(t *testing.T) {
	// Input ends mid-prompt; Run should return without error.
	out := runScript(t, "1\nalice\n")

	assert.Contains(t, out, "Password: ")
}
