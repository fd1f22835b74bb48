package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountOperations *prometheus.CounterVec
	OperationErrors   *prometheus.CounterVec

	// Transfer metrics
	TransfersCreated prometheus.Counter
	TransferErrors   *prometheus.CounterVec
	TransferAmount   prometheus.Histogram

	// Credential metrics
	UsersRegistered prometheus.Counter
	AuthAttempts    *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_account_operations_total",
				Help: "Total successful account operations by type",
			},
			[]string{"operation"},
		),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_operation_errors_total",
				Help: "Total rejected account operations by type and reason",
			},
			[]string{"operation", "reason"},
		),

		// Transfer metrics
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_transfers_created_total",
			Help: "Total number of transfers created",
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_transfer_errors_total",
				Help: "Total number of transfer errors by reason",
			},
			[]string{"reason"},
		),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "minibank_transfer_amount_minor_units",
			Help:    "Transfer amounts in minor units",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),

		// Credential metrics
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_users_registered_total",
			Help: "Total number of registered users",
		}),
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_auth_attempts_total",
				Help: "Total authentication attempts by status",
			},
			[]string{"status"},
		),
	}
}
