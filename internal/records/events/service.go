package events

import (
	"context"

	"github.com/google/uuid"

	"github.com/workdesk/workdesk/internal/platform/cache"
)

const listCacheKey = "records:events:list"

type Service struct {
	repo  Repository
	cache *cache.ListCache
}

func NewService(repo Repository, listCache *cache.ListCache) *Service {
	return &Service{repo: repo, cache: listCache}
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	var events []Event
	err := s.cache.FetchJSON(ctx, listCacheKey, &events, func(ctx context.Context) (any, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

func (s *Service) Create(ctx context.Context, event Event) (Event, error) {
	if err := s.validate(event); err != nil {
		return Event{}, err
	}
	event.ID = uuid.NewString()
	if err := s.repo.Create(ctx, event); err != nil {
		return Event{}, err
	}
	_ = s.cache.Invalidate(ctx, listCacheKey)
	return event, nil
}

func (s *Service) Update(ctx context.Context, id string, event Event) error {
	if err := s.validate(event); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, event); err != nil {
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
