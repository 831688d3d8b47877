package photos

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/volcano-atlas/volcano_api/internal/auth"
)

// VolcanoChecker confirms a volcano exists before photos are read or written.
type VolcanoChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// Service records photo links against volcanoes.
type Service struct {
	repo     Repository
	volcanos VolcanoChecker
	now      func() time.Time
}

// NewService builds a photo service.
func NewService(repo Repository, volcanos VolcanoChecker) *Service {
	return &Service{repo: repo, volcanos: volcanos, now: time.Now}
}

// Add attaches a photo link uploaded by the caller proven by the token.
func (s *Service) Add(ctx context.Context, volcanoID int, uploader auth.Identity, url, caption string) (Photo, error) {
	if err := s.ensureVolcano(ctx, volcanoID); err != nil {
		return Photo{}, err
	}
	photo := Photo{
		ID:            uuid.NewString(),
		VolcanoID:     volcanoID,
		UploaderEmail: uploader.TokenEmail,
		URL:           strings.TrimSpace(url),
		Caption:       strings.TrimSpace(caption),
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Create(ctx, photo); err != nil {
		return Photo{}, err
	}
	return photo, nil
}

// List returns the photos of a volcano, newest first.
func (s *Service) List(ctx context.Context, volcanoID int) ([]Photo, error) {
	if err := s.ensureVolcano(ctx, volcanoID); err != nil {
		return nil, err
	}
	return s.repo.ListByVolcano(ctx, volcanoID)
}

func (s *Service) ensureVolcano(ctx context.Context, id int) error {
	ok, err := s.volcanos.Exists(ctx, id)
	switch {
	case err != nil:
		return err
	case !ok:
		return ErrVolcanoNotFound
	}
	return nil
}
