package employees

import (
	"context"

	"github.com/google/uuid"

	"github.com/workdesk/workdesk/internal/platform/cache"
)

const listCacheKey = "records:employees:list"

type Service struct {
	repo  Repository
	cache *cache.ListCache
}

func NewService(repo Repository, listCache *cache.ListCache) *Service {
	return &Service{repo: repo, cache: listCache}
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := s.cache.FetchJSON(ctx, listCacheKey, &employees, func(ctx context.Context) (any, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []Employee{}
	}
	return employees, nil
}

func (s *Service) Create(ctx context.Context, employee Employee) (Employee, error) {
	if err := s.validate(employee); err != nil {
		return Employee{}, err
	}
	employee.ID = uuid.NewString()
	if err := s.repo.Create(ctx, employee); err != nil {
		return Employee{}, err
	}
	_ = s.cache.Invalidate(ctx, listCacheKey)
	return employee, nil
}

func (s *Service) Update(ctx context.Context, id string, employee Employee) error {
	if err := s.validate(employee); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, employee); err != nil {
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
