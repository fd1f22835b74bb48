package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/iho/minibank/internal/adapter/repository/memory"
	"github.com/iho/minibank/internal/adapter/shell"
	"github.com/iho/minibank/internal/infrastructure/config"
	"github.com/iho/minibank/internal/infrastructure/logger"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minibank",
		Short: "In-memory banking ledger with an interactive shell",
		Long:  `minibank keeps accounts, balances and transaction history in memory and exposes them through an interactive console menu.`,
		RunE:  run,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	m := metrics.New()

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())

			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error().Err(err).Msg("metrics listener stopped")
			}
		}()
	}

	directory := memory.NewAccountDirectory()
	userRepo := memory.NewUserRepository()
	idGen := memory.NewULIDGenerator()

	ledger := usecase.NewLedgerUseCase(directory, idGen, m, log)
	users := usecase.NewUserUseCase(userRepo, m, log)

	sh := shell.New(ledger, users, os.Stdin, os.Stdout, log)
	return sh.Run(cmd.Context())
}
