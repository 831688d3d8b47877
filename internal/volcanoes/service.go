package volcanoes

import (
	"context"
	"errors"
	"log/slog"
)

// Service answers volcano queries.
type Service struct {
	repo   Repository
	cache  CountryCache
	logger *slog.Logger
}

// NewService builds a volcano service. cache may be nil.
func NewService(repo Repository, cache CountryCache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Countries returns the sorted distinct country list, served from the cache
// when possible. Cache failures are logged and never fail the request.
func (s *Service) Countries(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		countries, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.warn("countries cache read failed", err)
		} else if ok {
			return countries, nil
		}
	}

	countries, err := s.repo.Countries(ctx)
	if err != nil {
		return nil, err
	}
	if countries == nil {
		countries = []string{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, countries); err != nil {
			s.warn("countries cache write failed", err)
		}
	}
	return countries, nil
}

// List returns the volcanoes of a country, optionally only those with people
// living within the given radius.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Volcano, error) {
	out, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Volcano{}
	}
	return out, nil
}

// Get loads a volcano with the given projection.
func (s *Service) Get(ctx context.Context, id int, projection Projection) (Volcano, error) {
	return s.repo.Get(ctx, id, projection)
}

// Exists reports whether a volcano with id is in the dataset.
func (s *Service) Exists(ctx context.Context, id int) (bool, error) {
	_, err := s.repo.Get(ctx, id, ProjectionPublic)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, slog.Any("error", err))
	}
}
