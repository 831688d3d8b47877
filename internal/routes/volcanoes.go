package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/comments"
	"github.com/volcano-atlas/volcano_api/internal/photos"
	"github.com/volcano-atlas/volcano_api/internal/volcanoes"
)

// RegisterVolcanoRoutes wires the dataset queries.
func RegisterVolcanoRoutes(r fiber.Router, h *volcanoes.Handler, optional fiber.Handler) {
	r.Get("/countries", h.Countries)
	r.Get("/volcanoes", optional, h.List)
	r.Get("/volcano/:id", optional, h.Get)
}

// RegisterCommunityRoutes wires comments and photo links on a volcano.
func RegisterCommunityRoutes(r fiber.Router, ch *comments.Handler, ph *photos.Handler, g gates) {
	group := r.Group("/volcano/:id")
	group.Get("/comments", g.optional, ch.List)
	group.Post("/comments", g.required, ch.Create)
	group.Get("/photos", g.optional, ph.List)
	group.Post("/photos", g.required, ph.Create)
}
