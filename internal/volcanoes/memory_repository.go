package volcanoes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository for tests and local runs.
type MemoryRepository struct {
	mu       sync.RWMutex
	volcanos map[int]Volcano
}

// NewMemoryRepository constructs an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{volcanos: make(map[int]Volcano)}
}

// Seed stores volcanoes, replacing any with the same id.
func (r *MemoryRepository) Seed(vs ...Volcano) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range vs {
		r.volcanos[v.ID] = v
	}
}

func (r *MemoryRepository) Countries(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	out := []string{}
	for _, v := range r.volcanos {
		if _, ok := seen[v.Country]; ok {
			continue
		}
		seen[v.Country] = struct{}{}
		out = append(out, v.Country)
	}
	sort.Strings(out)
	return out, nil
}

func (r *MemoryRepository) List(_ context.Context, filter ListFilter) ([]Volcano, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Volcano{}
	for _, v := range r.volcanos {
		if v.Country != filter.Country {
			continue
		}
		if filter.PopulatedWithin != "" && populationWithin(v.Population, filter.PopulatedWithin) <= 0 {
			continue
		}
		v.Population = nil
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id int, projection Projection) (Volcano, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.volcanos[id]
	if !ok {
		return Volcano{}, ErrNotFound
	}
	if projection == ProjectionWithPopulation {
		p := Population{}
		if v.Population != nil {
			p = *v.Population
		}
		v.Population = &p
	} else {
		v.Population = nil
	}
	return v, nil
}

func populationWithin(p *Population, d Distance) int64 {
	if p == nil {
		return 0
	}
	switch d {
	case Within5km:
		return p.Within5km
	case Within10km:
		return p.Within10km
	case Within30km:
		return p.Within30km
	case Within100km:
		return p.Within100km
	}
	return 0
}
