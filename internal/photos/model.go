package photos

import (
	"errors"
	"time"
)

// ErrVolcanoNotFound is returned when linking to or listing an unknown volcano.
var ErrVolcanoNotFound = errors.New("volcano not found")

// Photo links an externally hosted image to a volcano.
type Photo struct {
	ID            string
	VolcanoID     int
	UploaderEmail string
	URL           string
	Caption       string
	CreatedAt     time.Time
}
