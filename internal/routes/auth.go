package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/auth"
)

// RegisterAuthRoutes wires registration and login.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/user")
	group.Post("/register", h.Register)
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
}
