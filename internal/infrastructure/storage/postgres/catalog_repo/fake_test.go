package catalog_repo

import (
	"context"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"taproom/internal/infrastructure/storage/postgres"
)

// fakeRows serves data one row at a time and reports err once exhausted.
type fakeRows struct {
	cols   []string
	data   [][]any
	err    error
	pos    int
	closed bool
}

func (r *fakeRows) Close()                        { r.closed = true }
func (r *fakeRows) Err() error                    { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

type fakeRow struct {
	value any
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	reflect.ValueOf(dest[0]).Elem().Set(reflect.ValueOf(r.value))
	return nil
}

type fakeBatchResults struct {
	n int
}

func (b *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("UPDATE 1"), nil
}
func (b *fakeBatchResults) Query() (pgx.Rows, error) { return nil, nil }
func (b *fakeBatchResults) QueryRow() pgx.Row        { return fakeRow{} }
func (b *fakeBatchResults) Close() error             { return nil }

// fakeTransactor runs fn inline and tallies how each transaction ended.
// It doubles as the querier handed to the repository.
type fakeTransactor struct {
	rows      *fakeRows
	count     int64
	queryErr  error
	commitErr error

	inTx      bool
	commits   int
	rollbacks int
	levels    []string
	sql       []string
	batches   []*pgx.Batch
}

var _ postgres.Transactor = (*fakeTransactor)(nil)

func (f *fakeTransactor) run(ctx context.Context, level string, fn func(ctx context.Context) error) error {
	f.levels = append(f.levels, level)
	f.inTx = true
	defer func() { f.inTx = false }()

	if err := fn(ctx); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return f.commitErr
}

func (f *fakeTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.run(ctx, "read committed", fn)
}

func (f *fakeTransactor) Serializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.run(ctx, "serializable", fn)
}

func (f *fakeTransactor) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.run(ctx, "read only", fn)
}

func (f *fakeTransactor) GetQuerier(context.Context) postgres.Querier { return f }
func (f *fakeTransactor) InTransaction(context.Context) bool         { return f.inTx }

func (f *fakeTransactor) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.sql = append(f.sql, sql)
	return pgconn.NewCommandTag("DELETE 1"), f.queryErr
}

func (f *fakeTransactor) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	f.sql = append(f.sql, sql)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeTransactor) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.sql = append(f.sql, sql)
	return fakeRow{value: f.count, err: f.queryErr}
}

func (f *fakeTransactor) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	f.batches = append(f.batches, b)
	return &fakeBatchResults{n: b.Len()}
}
