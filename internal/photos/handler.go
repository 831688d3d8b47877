package photos

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

// Handler exposes photo endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a photo handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	URL     string `json:"url" validate:"required,http_url,max=2048"`
	Caption string `json:"caption" validate:"max=280"`
}

type photoResponse struct {
	ID        string    `json:"id"`
	VolcanoID int       `json:"volcano_id"`
	Uploader  string    `json:"uploader,omitempty"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

// photoView hides the uploader's email from anonymous viewers.
func photoView(p Photo, viewer auth.Identity) photoResponse {
	resp := photoResponse{ID: p.ID, VolcanoID: p.VolcanoID, URL: p.URL, Caption: p.Caption, CreatedAt: p.CreatedAt}
	if viewer.Authenticated() {
		resp.Uploader = p.UploaderEmail
	}
	return resp
}

// Create links a photo to the volcano in the path.
func (h *Handler) Create(c *fiber.Ctx) error {
	volcanoID, err := volcanoes.ParseID(c)
	if err != nil {
		return err
	}
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Request body invalid: url and caption must be strings.")
	}
	req.URL = strings.TrimSpace(req.URL)
	req.Caption = strings.TrimSpace(req.Caption)
	if err := validation.Struct(req); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			if _, bad := verrs.Field("url"); bad {
				return fiber.NewError(http.StatusBadRequest, "Invalid input: url must be an http or https link.")
			}
		}
		return fiber.NewError(http.StatusBadRequest, "Invalid input: caption must be at most 280 characters.")
	}

	viewer := auth.IdentityFrom(c)
	photo, err := h.service.Add(c.UserContext(), volcanoID, viewer, req.URL, req.Caption)
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusCreated).JSON(photoView(photo, viewer))
}

// List returns the photos of the volcano in the path, newest first.
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
	out := make([]photoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, photoView(p, viewer))
	}
	return c.JSON(out)
}

func mapError(err error) error {
	if errors.Is(err, ErrVolcanoNotFound) {
		return fiber.NewError(http.StatusNotFound, "Volcano ID not found")
	}
	return err
}
