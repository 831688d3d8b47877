package auth

import (
	"context"
	"errors"
	"fmt"
)

// Credential is the stored login secret for an email.
type Credential struct {
	Email        string
	PasswordHash string
}

// CredentialStore is the persistence collaborator behind registration, login and
// the subject-scoped gate. Lookups are exact matches on the stored email.
type CredentialStore interface {
	FindCredential(ctx context.Context, email string) (Credential, error)
	CreateCredential(ctx context.Context, cred Credential) error
}

// Credentials is the login/registration request.
type Credentials struct {
	Email    string
	Password string
}

// Service registers users and exchanges credentials for bearer tokens.
type Service struct {
	store  CredentialStore
	hasher Hasher
	tokens *TokenCodec
}

// NewService wires a credential store, hasher and token codec.
func NewService(store CredentialStore, hasher Hasher, tokens *TokenCodec) *Service {
	return &Service{store: store, hasher: hasher, tokens: tokens}
}

// Register stores a new credential. The duplicate check is an exact match on email.
func (s *Service) Register(ctx context.Context, creds Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return ErrMissingCredentials
	}

	_, err := s.store.FindCredential(ctx, creds.Email)
	switch {
	case err == nil:
		return ErrUserExists
	case !errors.Is(err, ErrCredentialNotFound):
		return fmt.Errorf("find credential: %w", err)
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.store.CreateCredential(ctx, Credential{Email: creds.Email, PasswordHash: hash}); err != nil {
		if errors.Is(err, ErrCredentialExists) {
			return ErrUserExists
		}
		return fmt.Errorf("create credential: %w", err)
	}
	return nil
}

// Login verifies creds and issues a token for the email as supplied.
func (s *Service) Login(ctx context.Context, creds Credentials) (Token, error) {
	if creds.Email == "" || creds.Password == "" {
		return Token{}, ErrMissingCredentials
	}

	cred, err := s.store.FindCredential(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, ErrCredentialNotFound) {
			return Token{}, ErrInvalidCredentials
		}
		return Token{}, fmt.Errorf("find credential: %w", err)
	}

	if !s.hasher.Compare(cred.PasswordHash, creds.Password) {
		return Token{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(creds.Email)
	if err != nil {
		return Token{}, fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// TokenTTLSeconds is the expires_in value reported to clients.
func (s *Service) TokenTTLSeconds() int64 {
	return int64(s.tokens.TTL().Seconds())
}
