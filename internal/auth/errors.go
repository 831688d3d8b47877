package auth

import "errors"

var (
	// ErrMalformedHeader is returned when an Authorization header does not follow
	// the "Bearer <token>" form.
	ErrMalformedHeader = errors.New("authorization header is malformed")
	// ErrMissingToken is returned when the Bearer prefix is present but no token follows it.
	ErrMissingToken = errors.New("bearer token not found")
	// ErrTokenExpired is returned for a correctly signed token whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidToken covers bad signatures, unparseable tokens and missing claims.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials is the single login failure; it never says which part was wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrUserExists is returned by registration when the email is already stored.
	ErrUserExists = errors.New("user already exists")

	// ErrCredentialNotFound is returned by a CredentialStore lookup miss.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrCredentialExists is returned by a CredentialStore on duplicate insert.
	ErrCredentialExists = errors.New("credential exists")
)
