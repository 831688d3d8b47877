package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/auth"
)

const bearerPrefix = "Bearer "

const (
	msgMalformedHeader = "Authorization header is malformed"
	msgMissingToken    = `Authorization header ("Bearer token") not found`
	msgTokenExpired    = "JWT token has expired"
	msgInvalidToken    = "Invalid JWT token"
	msgUserNotFound    = "User not found"
	msgLookupFailed    = "Error fetching user details"
)

// TokenVerifier checks a bearer token and returns the email it proves.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth rejects any request without a valid bearer token and attaches the
// token's identity otherwise.
func RequireAuth(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := authenticate(c.Get(fiber.HeaderAuthorization), tokens)
		if err != nil {
			return rejection(err)
		}
		auth.SetIdentity(c, auth.Identity{Email: email, TokenEmail: email})
		return c.Next()
	}
}

// OptionalAuth lets requests without an Authorization header through anonymously.
// A header that is present but malformed, expired or invalid is still rejected.
func OptionalAuth(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			auth.SetIdentity(c, auth.Identity{})
			return c.Next()
		}
		email, err := authenticate(header, tokens)
		if err != nil {
			return rejection(err)
		}
		auth.SetIdentity(c, auth.Identity{Email: email, TokenEmail: email})
		return c.Next()
	}
}

// OptionalAuthForSubject is OptionalAuth for routes scoped by an email path
// parameter. When the token's email differs from the path subject the identity is
// re-resolved from the store using the normalized path value: an unknown subject
// is a 404, a known one becomes the request identity. TokenEmail always keeps the
// email the token proved.
func OptionalAuthForSubject(tokens TokenVerifier, store auth.CredentialStore, param string, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			auth.SetIdentity(c, auth.Identity{})
			return c.Next()
		}
		email, err := authenticate(header, tokens)
		if err != nil {
			return rejection(err)
		}

		subject := c.Params(param)
		if auth.SameEmail(email, subject) {
			auth.SetIdentity(c, auth.Identity{Email: email, TokenEmail: email})
			return c.Next()
		}

		// TODO: confirm whether a mismatched caller should be rejected instead of re-resolved.
		cred, err := store.FindCredential(c.UserContext(), auth.NormalizeEmail(subject))
		if err != nil {
			if errors.Is(err, auth.ErrCredentialNotFound) {
				return fiber.NewError(http.StatusNotFound, msgUserNotFound)
			}
			if logger != nil {
				logger.Error("subject lookup failed", slog.String("subject", subject), slog.Any("error", err))
			}
			return fiber.NewError(http.StatusInternalServerError, msgLookupFailed)
		}
		auth.SetIdentity(c, auth.Identity{Email: cred.Email, TokenEmail: email})
		return c.Next()
	}
}

// authenticate parses a "Bearer <token>" header and verifies the token.
func authenticate(header string, tokens TokenVerifier) (string, error) {
	token, err := bearerToken(header)
	if err != nil {
		return "", err
	}
	return tokens.Verify(token)
}

// bearerToken extracts the token as the second space separated field after the
// case-sensitive "Bearer " prefix.
func bearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", auth.ErrMalformedHeader
	}
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return "", auth.ErrMalformedHeader
	}
	if parts[1] == "" {
		return "", auth.ErrMissingToken
	}
	return parts[1], nil
}

func rejection(err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return fiber.NewError(http.StatusUnauthorized, msgMissingToken)
	case errors.Is(err, auth.ErrTokenExpired):
		return fiber.NewError(http.StatusUnauthorized, msgTokenExpired)
	case errors.Is(err, auth.ErrInvalidToken):
		return fiber.NewError(http.StatusUnauthorized, msgInvalidToken)
	default:
		return fiber.NewError(http.StatusUnauthorized, msgMalformedHeader)
	}
}
