package beer

import (
	"context"
	"fmt"
	"iter"

	"taproom/internal/core/stream"
	"taproom/internal/domain"
)

var _ domain.ResourceService[CreateRequest, UpdateRequest, SearchRequest, Response] = (*Service)(nil)

// Service maps beer requests onto the repository and back.
type Service struct {
	repo            Repository
	defaultPageSize int
}

// NewService creates a beer service. defaultPageSize applies to searches
// without an explicit size.
func NewService(repo Repository, defaultPageSize int) *Service {
	if defaultPageSize <= 0 {
		defaultPageSize = domain.DefaultPageSize
	}
	return &Service{repo: repo, defaultPageSize: defaultPageSize}
}

// List streams the beers matching req. Nothing is read until the
// sequence is ranged over.
func (s *Service) List(ctx context.Context, req SearchRequest) iter.Seq2[Response, error] {
	return stream.Map(s.repo.Query(ctx, req.ToFilter(s.defaultPageSize)), FromEntity)
}

// Count returns the number of beers matching req across all pages.
func (s *Service) Count(ctx context.Context, req SearchRequest) (int64, error) {
	n, err := s.repo.Count(ctx, req.ToFilter(s.defaultPageSize))
	if err != nil {
		return 0, fmt.Errorf("count beers: %w", err)
	}
	return n, nil
}

// Create stores all beers in one transaction and returns them as stored.
func (s *Service) Create(ctx context.Context, reqs []CreateRequest) ([]Response, error) {
	entities := make([]Beer, len(reqs))
	for i, r := range reqs {
		entities[i] = r.ToEntity()
	}

	saved, err := s.repo.Insert(ctx, entities)
	if err != nil {
		return nil, fmt.Errorf("create beers: %w", err)
	}

	out := make([]Response, len(saved))
	for i, b := range saved {
		out[i] = FromEntity(b)
	}
	return out, nil
}

// Update applies the partial updates in one transaction.
func (s *Service) Update(ctx context.Context, reqs []UpdateRequest) error {
	if err := s.repo.Patch(ctx, reqs); err != nil {
		return fmt.Errorf("update beers: %w", err)
	}
	return nil
}

// Delete removes the beers with the given ids.
func (s *Service) Delete(ctx context.Context, ids []int64) error {
	if err := s.repo.Delete(ctx, ids); err != nil {
		return fmt.Errorf("delete beers: %w", err)
	}
	return nil
}
