package volcanoes

import "errors"

// ErrNotFound is returned when no volcano has the requested id.
var ErrNotFound = errors.New("volcano not found")

// Volcano is one row of the volcano dataset.
type Volcano struct {
	ID           int
	Name         string
	Country      string
	Region       string
	Subregion    string
	LastEruption string
	Summit       int
	Elevation    int
	Latitude     float64
	Longitude    float64
	// Population is nil unless the row was loaded with ProjectionWithPopulation.
	Population *Population
}

// Population counts people living within fixed radii of the volcano.
type Population struct {
	Within5km   int64
	Within10km  int64
	Within30km  int64
	Within100km int64
}

// Projection selects which columns a lookup loads.
type Projection int

const (
	ProjectionPublic Projection = iota
	ProjectionWithPopulation
)

// Distance is a populatedWithin radius accepted by the list endpoint.
type Distance string

const (
	Within5km   Distance = "5km"
	Within10km  Distance = "10km"
	Within30km  Distance = "30km"
	Within100km Distance = "100km"
)

// populationColumns maps each accepted radius to its population column.
var populationColumns = map[Distance]string{
	Within5km:   "population_5km",
	Within10km:  "population_10km",
	Within30km:  "population_30km",
	Within100km: "population_100km",
}

// Valid reports whether d is one of the supported radii.
func (d Distance) Valid() bool {
	_, ok := populationColumns[d]
	return ok
}

// ListFilter narrows the volcano list. Country is required; an empty
// PopulatedWithin disables the population filter.
type ListFilter struct {
	Country         string
	PopulatedWithin Distance
}
