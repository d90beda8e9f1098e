package departments

import (
	"context"

	"github.com/google/uuid"

	"github.com/workdesk/workdesk/internal/platform/cache"
)

const listCacheKey = "records:departments:list"

type Service struct {
	repo  Repository
	cache *cache.ListCache
}

func NewService(repo Repository, listCache *cache.ListCache) *Service {
	return &Service{repo: repo, cache: listCache}
}

func (s *Service) List(ctx context.Context) ([]Department, error) {
	var departments []Department
	err := s.cache.FetchJSON(ctx, listCacheKey, &departments, func(ctx context.Context) (any, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []Department{}
	}
	return departments, nil
}

func (s *Service) Create(ctx context.Context, department Department) (Department, error) {
	if err := s.validate(department); err != nil {
		return Department{}, err
	}
	department.ID = uuid.NewString()
	if err := s.repo.Create(ctx, department); err != nil {
		return Department{}, err
	}
	_ = s.cache.Invalidate(ctx, listCacheKey)
	return department, nil
}

func (s *Service) Update(ctx context.Context, id string, department Department) error {
	if err := s.validate(department); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, department); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, listCacheKey)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, listCacheKey)
	return nil
}
