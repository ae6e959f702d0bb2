// Package catalog_repo provides the PostgreSQL repositories of the beer and
// customer resources.
package catalog_repo

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"taproom/internal/core/stream"
	"taproom/internal/domain"
	"taproom/internal/infrastructure/metrics"
	"taproom/internal/infrastructure/storage/postgres"
)

// serverColumns are filled by the database and never sent on insert.
var serverColumns = []string{"id", "version", "created_at", "updated_at"}

// BaseCatalogRepo holds the operations shared by every resource table.
// Concrete repositories embed it and supply the filter and patch clauses.
type BaseCatalogRepo[T any] struct {
	txm        postgres.Transactor
	batch      *postgres.BatchExecutor
	tableName  string
	resource   string
	selectCols []string
	insertCols []string
}

// NewBaseCatalogRepo creates a base repository for table. Columns are taken
// from the db tags of T.
func NewBaseCatalogRepo[T any](txm postgres.Transactor, tableName, resource string) *BaseCatalogRepo[T] {
	cols := postgres.ExtractDBColumns[T]()
	insertCols := make([]string, 0, len(cols))
	for _, c := range cols {
		if !slices.Contains(serverColumns, c) {
			insertCols = append(insertCols, c)
		}
	}

	return &BaseCatalogRepo[T]{
		txm:        txm,
		batch:      postgres.NewBatchExecutor(txm),
		tableName:  tableName,
		resource:   resource,
		selectCols: cols,
		insertCols: insertCols,
	}
}

// Builder returns a squirrel builder with PostgreSQL placeholders.
func (r *BaseCatalogRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *BaseCatalogRepo[T]) returning() string {
	return "RETURNING " + strings.Join(r.selectCols, ", ")
}

func (r *BaseCatalogRepo[T]) buildInsert(items []T) squirrel.InsertBuilder {
	q := r.Builder().
		Insert(r.tableName).
		Columns(r.insertCols...)

	for _, item := range items {
		q = q.Values(postgres.StructValues(item, r.insertCols)...)
	}
	return q.Suffix(r.returning())
}

// Insert stores items with a single multi-row INSERT and returns the rows
// as written, in input order.
func (r *BaseCatalogRepo[T]) Insert(ctx context.Context, items []T) ([]T, error) {
	if len(items) == 0 {
		return []T{}, nil
	}

	sql, args, err := r.buildInsert(items).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var saved []T
	err = r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &saved, sql, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", r.tableName, err)
	}
	return saved, nil
}

// patch builds the UPDATE for one row: the given assignments plus the
// version bump and the updated_at refresh.
func (r *BaseCatalogRepo[T]) patch(id int64, set map[string]any) squirrel.UpdateBuilder {
	return r.Builder().
		Update(r.tableName).
		SetMap(set).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id})
}

// execPatches sends every statement in one round trip inside a single
// READ COMMITTED transaction. The first failure rolls back all of them.
func (r *BaseCatalogRepo[T]) execPatches(ctx context.Context, stmts []squirrel.Sqlizer) error {
	if len(stmts) == 0 {
		return nil
	}

	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := r.batch.ExecuteBatch(ctx, stmts); err != nil {
			return fmt.Errorf("update %s: %w", r.tableName, err)
		}
		return nil
	})
}

func (r *BaseCatalogRepo[T]) buildDelete(ids []int64) squirrel.DeleteBuilder {
	return r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": ids})
}

// Delete removes the listed ids in a SERIALIZABLE transaction.
func (r *BaseCatalogRepo[T]) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := r.buildDelete(ids).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	return r.txm.Serializable(ctx, func(ctx context.Context) error {
		if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("delete %s: %w", r.tableName, err)
		}
		return nil
	})
}

func (r *BaseCatalogRepo[T]) buildSelect(where []squirrel.Sqlizer, page domain.Page) squirrel.SelectBuilder {
	q := r.Builder().
		Select(r.selectCols...).
		From(r.tableName)

	for _, w := range where {
		q = q.Where(w)
	}

	return q.OrderBy("id").
		Offset(page.Offset()).
		Limit(page.Limit())
}

// query streams the rows matching where inside a read-only transaction.
// Rows are scanned one at a time as the caller pulls them; the
// transaction commits once the caller stops or the rows run out.
func (r *BaseCatalogRepo[T]) query(ctx context.Context, where []squirrel.Sqlizer, page domain.Page) iter.Seq2[T, error] {
	sql, args, err := r.buildSelect(where, page).ToSql()
	if err != nil {
		return stream.Fail[T](fmt.Errorf("build select: %w", err))
	}

	rowsStreamed := metrics.RowsStreamed.WithLabelValues(r.resource)

	return stream.Once(func(yield func(T, error) bool) {
		stopped := false

		err := r.txm.ReadOnly(ctx, func(ctx context.Context) error {
			rows, err := r.txm.GetQuerier(ctx).Query(ctx, sql, args...)
			if err != nil {
				return fmt.Errorf("query %s: %w", r.tableName, err)
			}
			defer rows.Close()

			scanner := pgxscan.NewRowScanner(rows)
			for rows.Next() {
				var item T
				if err := scanner.Scan(&item); err != nil {
					return fmt.Errorf("scan %s: %w", r.tableName, err)
				}
				rowsStreamed.Inc()
				if !yield(item, nil) {
					stopped = true
					return nil
				}
			}
			return rows.Err()
		})

		if err != nil && !stopped {
			var zero T
			yield(zero, err)
		}
	})
}

func (r *BaseCatalogRepo[T]) buildCount(where []squirrel.Sqlizer) squirrel.SelectBuilder {
	q := r.Builder().
		Select("COUNT(*)").
		From(r.tableName)

	for _, w := range where {
		q = q.Where(w)
	}
	return q
}

// count returns the number of rows matching where in a read-only transaction.
func (r *BaseCatalogRepo[T]) count(ctx context.Context, where []squirrel.Sqlizer) (int64, error) {
	sql, args, err := r.buildCount(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int64
	err = r.txm.ReadOnly(ctx, func(ctx context.Context) error {
		return r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.tableName, err)
	}
	return n, nil
}

// containsAll splits text on whitespace and requires every word to occur
// in column. Matching is case-sensitive; LIKE wildcards in words are literal.
func containsAll(column string, text *string) []squirrel.Sqlizer {
	if text == nil {
		return nil
	}

	words := strings.Fields(*text)
	out := make([]squirrel.Sqlizer, 0, len(words))
	for _, w := range words {
		out = append(out, squirrel.Like{column: "%" + escapeLike(w) + "%"})
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// eq returns an equality condition when v is present.
func eq[V any](column string, v *V) []squirrel.Sqlizer {
	if v == nil {
		return nil
	}
	return []squirrel.Sqlizer{squirrel.Eq{column: *v}}
}

// idIn matches any of ids. An empty list matches everything.
func idIn(ids []int64) []squirrel.Sqlizer {
	if len(ids) == 0 {
		return nil
	}
	return []squirrel.Sqlizer{squirrel.Eq{"id": ids}}
}
