package comments

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/volcano-atlas/volcano_api/internal/auth"
)

// VolcanoChecker confirms a volcano exists before comments are read or written.
type VolcanoChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// Service manages volcano comments.
type Service struct {
	repo     Repository
	volcanos VolcanoChecker
	now      func() time.Time
}

// NewService builds a comment service.
func NewService(repo Repository, volcanos VolcanoChecker) *Service {
	return &Service{repo: repo, volcanos: volcanos, now: time.Now}
}

// Add stores a comment authored by the email the caller's token proved.
func (s *Service) Add(ctx context.Context, volcanoID int, author auth.Identity, body string) (Comment, error) {
	if err := s.ensureVolcano(ctx, volcanoID); err != nil {
		return Comment{}, err
	}
	comment := Comment{
		ID:          uuid.NewString(),
		VolcanoID:   volcanoID,
		AuthorEmail: author.TokenEmail,
		Body:        strings.TrimSpace(body),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// List returns the comments on a volcano, oldest first.
func (s *Service) List(ctx context.Context, volcanoID int) ([]Comment, error) {
	if err := s.ensureVolcano(ctx, volcanoID); err != nil {
		return nil, err
	}
	return s.repo.ListByVolcano(ctx, volcanoID)
}

func (s *Service) ensureVolcano(ctx context.Context, id int) error {
	ok, err := s.volcanos.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVolcanoNotFound
	}
	return nil
}
