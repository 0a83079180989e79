package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/ideamatcher-backend/internal/config"
)

// beginner starts transactions. Satisfied by *pgxpool.Pool and pgxmock pools.
type beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
// Nested RunInTx calls reuse the outer transaction.
type TxManager struct {
	db          beginner
	log         *slog.Logger
	maxAttempts uint
	initial     time.Duration
	maxInterval time.Duration
}

// TxOption customizes a TxManager.
type TxOption func(*TxManager)

// WithRetry configures how often a transaction aborted by a serialization
// failure or deadlock is retried.
func WithRetry(cfg config.LedgerConfig) TxOption {
	return func(m *TxManager) {
		m.maxAttempts = cfg.MaxAttempts
		m.initial = cfg.InitialInterval
		m.maxInterval = cfg.MaxInterval
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(log *slog.Logger) TxOption {
	return func(m *TxManager) {
		m.log = log.With("component", "txmanager")
	}
}

// NewTxManager creates a new TxManager. Without WithRetry a transaction is
// attempted once.
func NewTxManager(db beginner, opts ...TxOption) *TxManager {
	m := &TxManager{
		db:          db,
		log:         slog.Default(),
		maxAttempts: 1,
		initial:     20 * time.Millisecond,
		maxInterval: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
// Serialization failures and deadlocks roll back and re-run fn from scratch,
// so fn must not have side effects outside the transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	attempt := 0
	op := func() (struct{}, error) {
		attempt++
		err := m.runOnce(ctx, fn)
		if err == nil {
			return struct{}{}, nil
		}
		if IsRetryable(err) {
			m.log.DebugContext(ctx, "transaction conflict, retrying",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			return struct{}{}, err
		}
		return struct{}{}, backoff.Permanent(err)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = m.initial
	eb.MaxInterval = m.maxInterval

	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(eb),
		backoff.WithMaxTries(m.maxAttempts),
	)
	if err != nil && IsRetryable(err) {
		return fmt.Errorf("transaction aborted after %d attempts: %w", attempt, mapConflict(err))
	}
	return err
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
