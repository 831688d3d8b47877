package volcanoes

import "github.com/volcano-atlas/volcano_api/internal/auth"

// ProjectionFor picks the columns a viewer may see. Any authenticated caller
// gets the population figures; the anonymous caller never does.
func ProjectionFor(viewer auth.Identity) Projection {
	if viewer.Authenticated() {
		return ProjectionWithPopulation
	}
	return ProjectionPublic
}

type volcanoResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Country         string  `json:"country"`
	Region          string  `json:"region"`
	Subregion       string  `json:"subregion"`
	LastEruption    string  `json:"last_eruption"`
	Summit          int     `json:"summit"`
	Elevation       int     `json:"elevation"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Population5km   *int64  `json:"population_5km,omitempty"`
	Population10km  *int64  `json:"population_10km,omitempty"`
	Population30km  *int64  `json:"population_30km,omitempty"`
	Population100km *int64  `json:"population_100km,omitempty"`
}

// volcanoView serialises v, attaching population figures only when viewer may
// see them and they were loaded.
func volcanoView(v Volcano, viewer auth.Identity) volcanoResponse {
	resp := volcanoResponse{
		ID:           v.ID,
		Name:         v.Name,
		Country:      v.Country,
		Region:       v.Region,
		Subregion:    v.Subregion,
		LastEruption: v.LastEruption,
		Summit:       v.Summit,
		Elevation:    v.Elevation,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
	}
	if ProjectionFor(viewer) == ProjectionWithPopulation && v.Population != nil {
		p := *v.Population
		resp.Population5km = &p.Within5km
		resp.Population10km = &p.Within10km
		resp.Population30km = &p.Within30km
		resp.Population100km = &p.Within100km
	}
	return resp
}

func listView(vs []Volcano) []volcanoResponse {
	out := make([]volcanoResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, volcanoView(v, auth.Identity{}))
	}
	return out
}
