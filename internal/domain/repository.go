// Package domain holds the contracts shared by every resource.
package domain

import (
	"context"
	"iter"
)

const (
	// DefaultPage is used when a search request omits page.
	DefaultPage = 1

	// DefaultPageSize is used when a search request omits size and no
	// other default is configured.
	DefaultPageSize = 1000
)

// Page is a 1-based pagination window.
type Page struct {
	Number int
	Size   int
}

// PageOf applies defaults to the optional page and size of a request.
func PageOf(number, size *int, defaultSize int) Page {
	p := Page{Number: DefaultPage, Size: defaultSize}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if number != nil {
		p.Number = *number
	}
	if size != nil {
		p.Size = *size
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() uint64 {
	if p.Number < 1 {
		return 0
	}
	return uint64(p.Number-1) * uint64(p.Size)
}

// Limit is the maximum number of rows in this page.
func (p Page) Limit() uint64 {
	return uint64(p.Size)
}

// ResourceRepository is the storage contract of a resource with entity E,
// partial update U and search filter F.
//
// Each operation runs in its own transaction with a fixed isolation level:
// Insert and Patch at READ COMMITTED, Delete at SERIALIZABLE, Query and
// Count read-only.
type ResourceRepository[E, U, F any] interface {
	// Insert stores all entities atomically and returns them with the
	// store-assigned fields populated.
	Insert(ctx context.Context, entities []E) ([]E, error)

	// Patch applies every update in one transaction. Only present fields
	// change. Unknown ids are ignored. An empty list does nothing.
	Patch(ctx context.Context, updates []U) error

	// Delete removes every row whose id is listed.
	Delete(ctx context.Context, ids []int64) error

	// Query streams the matching rows ordered by id. The sequence is lazy
	// and can be ranged over once; the read transaction lives as long as
	// the iteration.
	Query(ctx context.Context, filter F) iter.Seq2[E, error]

	// Count returns the number of matching rows, ignoring pagination.
	Count(ctx context.Context, filter F) (int64, error)
}
