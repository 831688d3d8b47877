package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("super-secret", 24*time.Hour)
	for _, email := range []string{"mike@gmail.com", " Mixed.Case@Example.COM "} {
		tok, err := codec.Issue(email)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		got, err := codec.Verify(tok.Value)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if got != email {
			t.Fatalf("email mismatch: got %q want %q", got, email)
		}
	}
}

func TestIssueSetsExpiryFromTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec("k", 24*time.Hour).WithClock(fixedClock(now))

	tok, err := codec.Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !tok.ExpiresAt.Equal(now.Add(24 * time.Hour)) {
		t.Fatalf("unexpected expiry %s", tok.ExpiresAt)
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenCodec("k", 24*time.Hour).WithClock(fixedClock(issuedAt))
	tok, err := issuer.Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	inside := issuer.WithClock(fixedClock(issuedAt.Add(23 * time.Hour)))
	if _, err := inside.Verify(tok.Value); err != nil {
		t.Fatalf("expected valid token inside window, got %v", err)
	}

	later := issuer.WithClock(fixedClock(issuedAt.Add(25 * time.Hour)))
	if _, err := later.Verify(tok.Value); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenCodec("right", time.Hour).Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewTokenCodec("wrong", time.Hour).Verify(tok.Value); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyExpiredForgedIsInvalid(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tok, err := NewTokenCodec("right", time.Hour).WithClock(fixedClock(issuedAt)).Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	verifier := NewTokenCodec("wrong", time.Hour).WithClock(fixedClock(issuedAt.Add(48 * time.Hour)))
	if _, err := verifier.Verify(tok.Value); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("k", time.Hour)
	for _, in := range []string{"", "not.a.jwt", "abc", strings.Repeat("x", 64)} {
		if _, err := codec.Verify(in); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%q: expected ErrInvalidToken, got %v", in, err)
		}
	}
}

func TestVerifyRejectsMissingClaims(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@b.com"}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	codec := NewTokenCodec(string(secret), time.Hour)
	for name, tok := range map[string]string{"no exp": noExp, "no email": noEmail} {
		if _, err := codec.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "a@b.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewTokenCodec(string(secret), time.Hour).Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
