package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/workdesk/workdesk/internal/platform/cache"
)

const listCacheKey = "records:projects:list"

type Service struct {
	repo  Repository
	cache *cache.ListCache
}

func NewService(repo Repository, listCache *cache.ListCache) *Service {
	return &Service{repo: repo, cache: listCache}
}

func (s *Service) List(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := s.cache.FetchJSON(ctx, listCacheKey, &projects, func(ctx context.Context) (any, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []Project{}
	}
	return projects, nil
}

func (s *Service) Create(ctx context.Context, project Project) (Project, error) {
	if err := s.validate(project); err != nil {
		return Project{}, err
	}
	project.ID = uuid.NewString()
	if err := s.repo.Create(ctx, project); err != nil {
		return Project{}, err
	}
	_ = s.cache.Invalidate(ctx, listCacheKey)
	return project, nil
}

func (s *Service) Update(ctx context.Context, id string, project Project) error {
	if err := s.validate(project); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, project); err != nil {
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
