package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/users"
)

// RegisterUserRoutes wires the profile endpoints. Reads resolve the path
// subject; writes require a token.
func RegisterUserRoutes(r fiber.Router, h *users.Handler, g gates) {
	r.Get("/user/:email/profile", g.subject, h.GetProfile)
	r.Put("/user/:email/profile", g.required, h.UpdateProfile)
}
