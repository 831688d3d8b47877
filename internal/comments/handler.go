package comments

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/auth"
	"github.com/volcano-atlas/volcano_api/internal/validation"
	"github.com/volcano-atlas/volcano_api/internal/volcanoes"
)

// Handler exposes comment endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a comment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Body string `json:"body" validate:"required,notblank,max=2000"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	VolcanoID int       `json:"volcano_id"`
	Author    string    `json:"author,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// commentView hides the author's email from anonymous viewers.
func commentView(c Comment, viewer auth.Identity) commentResponse {
	resp := commentResponse{ID: c.ID, VolcanoID: c.VolcanoID, Body: c.Body, CreatedAt: c.CreatedAt}
	if viewer.Authenticated() {
		resp.Author = c.AuthorEmail
	}
	return resp
}

// Create adds a comment to the volcano in the path.
func (h *Handler) Create(c *fiber.Ctx) error {
	volcanoID, err := volcanoes.ParseID(c)
	if err != nil {
		return err
	}
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Request body invalid: body must be a string.")
	}
	req.Body = strings.TrimSpace(req.Body)
	if err := validation.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Request body invalid: body is required and at most 2000 characters.")
	}

	viewer := auth.IdentityFrom(c)
	comment, err := h.service.Add(c.UserContext(), volcanoID, viewer, req.Body)
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusCreated).JSON(commentView(comment, viewer))
}

// List returns the comments on the volcano in the path.
func (h *Handler) List(c *fiber.Ctx) error {
	volcanoID, err := volcanoes.ParseID(c)
	if err != nil {
		return err
	}
	list, err := h.service.List(c.UserContext(), volcanoID)
	if err != nil {
		return mapError(err)
	}
	viewer := auth.IdentityFrom(c)
	out := make([]commentResponse, 0, len(list))
	for _, cm := range list {
		out = append(out, commentView(cm, viewer))
	}
	return c.Status(http.StatusOK).JSON(out)
}

func mapError(err error) error {
	if errors.Is(err, ErrVolcanoNotFound) {
		return fiber.NewError(http.StatusNotFound, "Volcano ID not found")
	}
	return err
}
