package comments

import (
	"errors"
	"time"
)

// ErrVolcanoNotFound is returned when commenting on or listing an unknown volcano.
var ErrVolcanoNotFound = errors.New("volcano not found")

// Comment is a note left on a volcano by a registered user.
type Comment struct {
	ID          string
	VolcanoID   int
	AuthorEmail string
	Body        string
	CreatedAt   time.Time
}
