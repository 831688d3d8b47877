package users

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no user has the requested email.
	ErrNotFound = errors.New("user not found")
	// ErrExists is returned when inserting an email that is already stored.
	ErrExists = errors.New("user exists")
	// ErrForbidden is returned when a caller edits a profile that is not theirs.
	ErrForbidden = errors.New("forbidden")
)

// User is an account together with its profile. Profile fields stay nil until
// the owner fills them in.
type User struct {
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	DOB          *time.Time
	Address      *string
	CreatedAt    time.Time
}

// ProfileUpdate replaces every editable profile field at once.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	DOB       time.Time
	Address   string
}
