// Package tx defines the transaction contract used by repositories.
// The implementation lives in infrastructure/storage/postgres.
package tx

import (
	"context"
)

// Manager runs a function inside a database transaction. The transaction
// is committed when fn returns nil and rolled back otherwise. Calls nested
// inside an active transaction reuse it.
type Manager interface {
	// RunInTransaction uses READ COMMITTED, read-write.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Serializable uses SERIALIZABLE, read-write.
	Serializable(ctx context.Context, fn func(ctx context.Context) error) error

	// ReadOnly uses a READ ONLY transaction. Writes inside fn fail.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
