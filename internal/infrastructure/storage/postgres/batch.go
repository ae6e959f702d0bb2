package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// BatchExecutor sends several statements to the server in one round trip
// inside the active transaction.
type BatchExecutor struct {
	txManager Transactor
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(txManager Transactor) *BatchExecutor {
	return &BatchExecutor{txManager: txManager}
}

// ExecuteBatch runs stmts in order and returns the total number of affected
// rows. It must be called inside RunInTransaction (or one of its variants).
func (e *BatchExecutor) ExecuteBatch(ctx context.Context, stmts []squirrel.Sqlizer) (int64, error) {
	if !e.txManager.InTransaction(ctx) {
		return 0, fmt.Errorf("ExecuteBatch requires transaction context")
	}

	batch, err := queueBatch(stmts)
	if err != nil {
		return 0, err
	}

	results := e.txManager.GetQuerier(ctx).SendBatch(ctx, batch)
	defer results.Close()

	var affected int64
	for i := range stmts {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("batch statement %d: %w", i, err)
		}
		affected += tag.RowsAffected()
	}

	return affected, results.Close()
}

func queueBatch(stmts []squirrel.Sqlizer) (*pgx.Batch, error) {
	batch := &pgx.Batch{}
	for i, stmt := range stmts {
		sql, args, err := stmt.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build batch statement %d: %w", i, err)
		}
		batch.Queue(sql, args...)
	}
	return batch, nil
}
