package usecase_test

import (
	"github.com/rs/zerolog"

	"github.com/iho/minibank/internal/adapter/repository/memory"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

// Metrics register against the default registry, so the test binary
// creates them once.
var testMetrics = metrics.New()

func newTestLedger() *usecase.LedgerUseCase {
	return usecase.NewLedgerUseCase(
		memory.NewAccountDirectory(),
		memory.NewULIDGenerator(),
		testMetrics,
		zerolog.Nop(),
	)
}

func newTestUsers() *usecase.UserUseCase {
	return usecase.NewUserUseCase(memory.NewUserRepository(), testMetrics, zerolog.Nop())
}
