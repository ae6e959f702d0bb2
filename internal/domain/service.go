package domain

import (
	"context"
	"iter"
)

// ResourceService is what the http layer needs from a resource: create
// request C, update request U, search request S and response R.
type ResourceService[C, U, S, R any] interface {
	List(ctx context.Context, req S) iter.Seq2[R, error]
	Count(ctx context.Context, req S) (int64, error)
	Create(ctx context.Context, reqs []C) ([]R, error)
	Update(ctx context.Context, reqs []U) error
	Delete(ctx context.Context, ids []int64) error
}
