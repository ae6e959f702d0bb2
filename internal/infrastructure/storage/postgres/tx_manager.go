package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"taproom/internal/core/tx"
	"taproom/internal/infrastructure/metrics"
	"taproom/pkg/logger"
)

var tracer = otel.Tracer("taproom/tx")

var _ Transactor = (*TxManager)(nil)

// Transactor is the part of TxManager repositories depend on.
type Transactor interface {
	tx.Manager

	// GetQuerier returns the active transaction, or the pool outside one.
	GetQuerier(ctx context.Context) Querier

	// InTransaction reports whether ctx carries an active transaction.
	InTransaction(ctx context.Context) bool
}

// TxOptions configures a transaction.
type TxOptions struct {
	IsolationLevel pgx.TxIsoLevel
	AccessMode     pgx.TxAccessMode

	// StatementTimeout bounds every statement of the transaction. Zero disables it.
	StatementTimeout time.Duration
}

// DefaultTxOptions is READ COMMITTED, read-write.
func DefaultTxOptions() TxOptions {
	return TxOptions{
		IsolationLevel:   pgx.ReadCommitted,
		AccessMode:       pgx.ReadWrite,
		StatementTimeout: 30 * time.Second,
	}
}

// SerializableTxOptions is SERIALIZABLE, read-write.
func SerializableTxOptions() TxOptions {
	opts := DefaultTxOptions()
	opts.IsolationLevel = pgx.Serializable
	return opts
}

// ReadOnlyTxOptions is READ COMMITTED, read-only.
func ReadOnlyTxOptions() TxOptions {
	opts := DefaultTxOptions()
	opts.AccessMode = pgx.ReadOnly
	return opts
}

// TxManager begins, commits and rolls back transactions on a pool and
// hands the active transaction to repositories through the context.
type TxManager struct {
	pool             *pgxpool.Pool
	statementTimeout time.Duration
}

// NewTxManager creates a transaction manager. statementTimeout overrides
// the default of the option presets when positive.
func NewTxManager(pool *Pool, statementTimeout time.Duration) *TxManager {
	return &TxManager{pool: pool.Pool, statementTimeout: statementTimeout}
}

type txKey struct{}

// RunInTransaction executes fn at READ COMMITTED.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTransactionWithOptions(ctx, DefaultTxOptions(), fn)
}

// Serializable executes fn at SERIALIZABLE.
func (m *TxManager) Serializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTransactionWithOptions(ctx, SerializableTxOptions(), fn)
}

// ReadOnly executes fn in a read-only transaction.
func (m *TxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTransactionWithOptions(ctx, ReadOnlyTxOptions(), fn)
}

// RunInTransactionWithOptions executes fn with custom options. An active
// transaction in ctx is reused as is, whatever opts says. Server errors of
// the outermost transaction come back as AppErrors.
func (m *TxManager) RunInTransactionWithOptions(ctx context.Context, opts TxOptions, fn func(ctx context.Context) error) error {
	if m.GetTx(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, "transaction",
		trace.WithAttributes(
			attribute.String("tx.isolation", string(opts.IsolationLevel)),
			attribute.String("tx.access_mode", string(opts.AccessMode)),
		))
	defer span.End()

	err := m.startNewTransaction(ctx, opts, fn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return classifyError(err)
}

func (m *TxManager) startNewTransaction(ctx context.Context, opts TxOptions, fn func(ctx context.Context) error) error {
	isolation := isolationLabel(opts)

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   opts.IsolationLevel,
		AccessMode: opts.AccessMode,
	})
	if err != nil {
		metrics.Transactions.WithLabelValues(isolation, metrics.OutcomeError).Inc()
		return fmt.Errorf("begin transaction: %w", err)
	}

	timeout := opts.StatementTimeout
	if m.statementTimeout > 0 {
		timeout = m.statementTimeout
	}
	if timeout > 0 {
		_, err = tx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", timeout.Milliseconds()))
		if err != nil {
			_ = tx.Rollback(context.Background())
			metrics.Transactions.WithLabelValues(isolation, metrics.OutcomeError).Inc()
			return fmt.Errorf("set statement_timeout: %w", err)
		}
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := m.executeWithRollbackProtection(txCtx, tx, fn); err != nil {
		metrics.Transactions.WithLabelValues(isolation, metrics.OutcomeRollback).Inc()
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.Transactions.WithLabelValues(isolation, metrics.OutcomeError).Inc()
		return fmt.Errorf("commit transaction: %w", err)
	}

	metrics.Transactions.WithLabelValues(isolation, metrics.OutcomeCommit).Inc()
	return nil
}

// executeWithRollbackProtection runs fn and rolls back on error. The
// rollback uses a fresh context so it completes after cancellation.
func (m *TxManager) executeWithRollbackProtection(ctx context.Context, tx pgx.Tx, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err != nil {
		if rbErr := tx.Rollback(context.Background()); rbErr != nil {
			logger.Error(ctx, "rollback failed", "error", rbErr, "original_error", err)
		}
		return err
	}
	return nil
}

// GetTx returns the transaction active in ctx, or nil.
func (m *TxManager) GetTx(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

// InTransaction reports whether ctx carries an active transaction.
func (m *TxManager) InTransaction(ctx context.Context) bool {
	return m.GetTx(ctx) != nil
}

// Querier is the subset of pgx shared by pools and transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// GetQuerier returns the active transaction, or the pool outside one.
func (m *TxManager) GetQuerier(ctx context.Context) Querier {
	if tx := m.GetTx(ctx); tx != nil {
		return tx
	}
	return m.pool
}

func isolationLabel(opts TxOptions) string {
	label := string(opts.IsolationLevel)
	if opts.AccessMode == pgx.ReadOnly {
		label += " read only"
	}
	return label
}
