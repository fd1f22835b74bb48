package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
)

// UserUseCase handles credential registration and authentication for
// the shell layer. The ledger itself never authenticates; it trusts the
// caller identity established here.
type UserUseCase struct {
	userRepo UserRepository
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, m *metrics.Metrics, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		metrics:  m,
		log:      log,
	}
}

// RegisterInput represents input for registering a user.
type RegisterInput struct {
	Username string
	Secret   string
}

// Register validates and stores a new credential pair.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) error {
	if err := domain.ValidateUsername(input.Username); err != nil {
		return err
	}

	if err := domain.ValidateSecret(input.Secret); err != nil {
		return err
	}

	user := &domain.User{
		Username:  input.Username,
		Secret:    input.Secret,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return err
	}

	uc.metrics.UsersRegistered.Inc()
	uc.log.Info().Str("username", input.Username).Msg("user registered")

	return nil
}

// Authenticate reports whether the username and secret match a stored
// credential pair.
func (uc *UserUseCase) Authenticate(ctx context.Context, username, secret string) bool {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.metrics.AuthAttempts.WithLabelValues("failure").Inc()
		return false
	}

	if user.Secret != secret {
		uc.metrics.AuthAttempts.WithLabelValues("failure").Inc()
		return false
	}

	uc.metrics.AuthAttempts.WithLabelValues("success").Inc()
	return true
}
