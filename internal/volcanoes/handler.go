package volcanoes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/auth"
)

const (
	msgNoQueryParams     = "Invalid query parameters. Query parameters are not permitted."
	msgInvalidQueryParam = "Invalid query parameter."
	msgCountryRequired   = "Country is a required query parameter."
	msgInvalidPopulated  = "Invalid populatedWithin parameter. Only 5km, 10km, 30km, 100km are permitted."
	msgInvalidVolcanoID  = "Invalid parameter: id must be a number."
	msgVolcanoNotFound   = "Volcano ID not found"
	queryCountry         = "country"
	queryPopulatedWithin = "populatedWithin"
)

// Handler exposes the volcano dataset endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a volcano HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Countries lists every country with at least one volcano.
func (h *Handler) Countries(c *fiber.Ctx) error {
	if c.Context().QueryArgs().Len() > 0 {
		return fiber.NewError(http.StatusBadRequest, msgNoQueryParams)
	}
	countries, err := h.service.Countries(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(countries)
}

// List returns the volcanoes of a country.
func (h *Handler) List(c *fiber.Ctx) error {
	unknown := false
	c.Context().QueryArgs().VisitAll(func(key, _ []byte) {
		switch string(key) {
		case queryCountry, queryPopulatedWithin:
		default:
			unknown = true
		}
	})
	if unknown {
		return fiber.NewError(http.StatusBadRequest, msgInvalidQueryParam)
	}

	filter := ListFilter{Country: c.Query(queryCountry), PopulatedWithin: Distance(c.Query(queryPopulatedWithin))}
	if filter.Country == "" {
		return fiber.NewError(http.StatusBadRequest, msgCountryRequired)
	}
	if filter.PopulatedWithin != "" && !filter.PopulatedWithin.Valid() {
		return fiber.NewError(http.StatusBadRequest, msgInvalidPopulated)
	}

	vs, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(listView(vs))
}

// Get returns one volcano; population figures are attached for authenticated callers.
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := ParseID(c)
	if err != nil {
		return err
	}

	viewer := auth.IdentityFrom(c)
	v, err := h.service.Get(c.UserContext(), id, ProjectionFor(viewer))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, msgVolcanoNotFound)
		}
		return err
	}
	return c.Status(http.StatusOK).JSON(volcanoView(v, viewer))
}

// ParseID parses the :id path parameter shared by volcano sub-resources. Ids are
// int4 in storage, so a number outside that range cannot name a volcano.
func ParseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fiber.NewError(http.StatusNotFound, msgVolcanoNotFound)
		}
		return 0, fiber.NewError(http.StatusBadRequest, msgInvalidVolcanoID)
	}
	return int(id), nil
}
