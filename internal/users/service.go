package users

import (
	"context"

	"github.com/volcano-atlas/volcano_api/internal/auth"
)

// Service manages user profiles.
type Service struct {
	repo Repository
}

// NewService creates a new profile service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Profile looks up the profile for email after trimming and lowercasing it.
func (s *Service) Profile(ctx context.Context, email string) (User, error) {
	return s.repo.FindByEmail(ctx, auth.NormalizeEmail(email))
}

// UpdateProfile replaces the profile stored under email. Only the owner of the
// token may edit a profile; the stored row is addressed by email as given.
func (s *Service) UpdateProfile(ctx context.Context, caller auth.Identity, email string, update ProfileUpdate) (User, error) {
	if !caller.Authenticated() || !auth.SameEmail(caller.TokenEmail, email) {
		return User{}, ErrForbidden
	}
	return s.repo.UpdateProfile(ctx, email, update)
}
