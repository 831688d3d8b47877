package users

import (
	"context"
	"errors"
	"time"

	"github.com/volcano-atlas/volcano_api/internal/auth"
)

// CredentialStore adapts a Repository to auth.CredentialStore.
type CredentialStore struct {
	repo Repository
}

// NewCredentialStore wraps repo.
func NewCredentialStore(repo Repository) *CredentialStore {
	return &CredentialStore{repo: repo}
}

// FindCredential returns the stored hash for email.
func (s *CredentialStore) FindCredential(ctx context.Context, email string) (auth.Credential, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.Credential{}, auth.ErrCredentialNotFound
		}
		return auth.Credential{}, err
	}
	return auth.Credential{Email: user.Email, PasswordHash: user.PasswordHash}, nil
}

// CreateCredential registers a user with an empty profile.
func (s *CredentialStore) CreateCredential(ctx context.Context, cred auth.Credential) error {
	err := s.repo.Create(ctx, User{Email: cred.Email, PasswordHash: cred.PasswordHash, CreatedAt: time.Now().UTC()})
	if errors.Is(err, ErrExists) {
		return auth.ErrCredentialExists
	}
	return err
}
