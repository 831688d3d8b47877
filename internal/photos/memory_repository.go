package photos

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu     sync.RWMutex
	photos map[int][]Photo
}

// NewMemoryRepository constructs an in-memory repository for tests and local runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{photos: make(map[int][]Photo)}
}

func (r *memoryRepository) Create(_ context.Context, photo Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.photos[photo.VolcanoID] = append(r.photos[photo.VolcanoID], photo)
	return nil
}

func (r *memoryRepository) ListByVolcano(_ context.Context, volcanoID int) ([]Photo, error) {
	r.mu.RLock()
	stored := r.photos[volcanoID]
	out := make([]Photo, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	r.mu.RUnlock()

	// Reversed insertion order breaks ties between equal timestamps.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
