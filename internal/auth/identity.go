package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const identityLocalsKey = "identity"

// Identity is the outcome an authorization gate attaches to a request. The zero
// value is the anonymous caller.
type Identity struct {
	// Email is the identity the request acts as.
	Email string
	// TokenEmail is the email the bearer token proved. It differs from Email only
	// when a subject-scoped gate re-resolved the identity from the path.
	TokenEmail string
}

// Authenticated reports whether a valid bearer token was presented.
func (i Identity) Authenticated() bool {
	return i.TokenEmail != ""
}

// SetIdentity stores id on the request.
func SetIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(identityLocalsKey, id)
}

// IdentityFrom returns the identity attached by a gate, or the anonymous identity.
func IdentityFrom(c *fiber.Ctx) Identity {
	id, _ := c.Locals(identityLocalsKey).(Identity)
	return id
}

// NormalizeEmail trims and lowercases an email for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameEmail compares two emails ignoring case and surrounding whitespace.
func SameEmail(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}
