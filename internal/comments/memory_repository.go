package comments

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	comments map[int][]Comment
}

// NewMemoryRepository constructs an in-memory repository for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{comments: make(map[int][]Comment)}
}

func (r *memoryRepository) Create(_ context.Context, comment Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[comment.VolcanoID] = append(r.comments[comment.VolcanoID], comment)
	return nil
}

func (r *memoryRepository) ListByVolcano(_ context.Context, volcanoID int) ([]Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Comment, len(r.comments[volcanoID]))
	copy(out, r.comments[volcanoID])
	return out, nil
}
