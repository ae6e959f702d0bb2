package customer

import (
	"context"
	"fmt"
	"iter"

	"taproom/internal/core/stream"
	"taproom/internal/domain"
)

var _ domain.ResourceService[CreateRequest, UpdateRequest, SearchRequest, Response] = (*Service)(nil)

// Service maps customer requests onto the repository and back.
type Service struct {
	repo            Repository
	defaultPageSize int
}

func NewService(repo Repository, defaultPageSize int) *Service {
	if defaultPageSize <= 0 {
		defaultPageSize = domain.DefaultPageSize
	}
	return &Service{repo: repo, defaultPageSize: defaultPageSize}
}

func (s *Service) List(ctx context.Context, req SearchRequest) iter.Seq2[Response, error] {
	return stream.Map(s.repo.Query(ctx, req.ToFilter(s.defaultPageSize)), FromEntity)
}

func (s *Service) Count(ctx context.Context, req SearchRequest) (int64, error) {
	n, err := s.repo.Count(ctx, req.ToFilter(s.defaultPageSize))
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

func (s *Service) Create(ctx context.Context, reqs []CreateRequest) ([]Response, error) {
	entities := make([]Customer, len(reqs))
	for i, r := range reqs {
		entities[i] = r.ToEntity()
	}

	saved, err := s.repo.Insert(ctx, entities)
	if err != nil {
		return nil, fmt.Errorf("create customers: %w", err)
	}

	out := make([]Response, len(saved))
	for i, c := range saved {
		out[i] = FromEntity(c)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, reqs []UpdateRequest) error {
	if err := s.repo.Patch(ctx, reqs); err != nil {
		return fmt.Errorf("update customers: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, ids []int64) error {
	if err := s.repo.Delete(ctx, ids); err != nil {
		return fmt.Errorf("delete customers: %w", err)
	}
	return nil
}
