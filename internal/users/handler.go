package users

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/auth"
	"github.com/volcano-atlas/volcano_api/internal/validation"
)

const (
	msgUserNotFound      = "User not found"
	msgProfileIncomplete = "Request body incomplete: firstName, lastName, dob and address are required."
	msgInvalidDOB        = "Invalid input: dob must be a real date in format YYYY-MM-DD."
	msgFutureDOB         = "Invalid input: dob must be a date in the past."
	msgProfileNotStrings = "Request body invalid: firstName, lastName and address must be strings only."
)

// Handler exposes profile endpoints.
type Handler struct {
	service *Service
	now     func() time.Time
}

// NewHandler constructs a profile HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

// profileUpdateBody is decoded loosely so a wrongly typed field is reported by
// the check that owns it rather than by the JSON decoder.
type profileUpdateBody struct {
	FirstName any `json:"firstName"`
	LastName  any `json:"lastName"`
	DOB       any `json:"dob"`
	Address   any `json:"address"`
}

type profileUpdateRequest struct {
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	Address   string `json:"address" validate:"notblank"`
}

// GetProfile returns the profile named in the path, disclosing restricted fields
// only to its owner.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	user, err := h.service.Profile(c.UserContext(), c.Params("email"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, msgUserNotFound)
		}
		return err
	}
	return c.Status(http.StatusOK).JSON(profileView(user, auth.IdentityFrom(c)))
}

// UpdateProfile replaces the caller's own profile.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var body profileUpdateBody
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(http.StatusBadRequest, msgProfileIncomplete)
	}

	update, err := h.parseUpdate(body)
	if err != nil {
		return err
	}

	email := c.Params("email")
	user, err := h.service.UpdateProfile(c.UserContext(), auth.IdentityFrom(c), email, update)
	switch {
	case err == nil:
	case errors.Is(err, ErrForbidden):
		return fiber.NewError(http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, msgUserNotFound)
	default:
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"email":     user.Email,
		"firstName": update.FirstName,
		"lastName":  update.LastName,
		"dob":       update.DOB.Format(dateLayout),
		"address":   update.Address,
	})
}

// parseUpdate applies the checks in the order clients rely on: presence, date
// format, date in the past, then non-blank strings.
func (h *Handler) parseUpdate(body profileUpdateBody) (ProfileUpdate, error) {
	if !present(body.FirstName) || !present(body.LastName) || !present(body.DOB) || !present(body.Address) {
		return ProfileUpdate{}, fiber.NewError(http.StatusBadRequest, msgProfileIncomplete)
	}

	dobText, ok := body.DOB.(string)
	if !ok {
		return ProfileUpdate{}, fiber.NewError(http.StatusBadRequest, msgInvalidDOB)
	}
	dob, err := time.ParseInLocation(dateLayout, dobText, time.Local)
	if err != nil {
		return ProfileUpdate{}, fiber.NewError(http.StatusBadRequest, msgInvalidDOB)
	}
	if dob.After(h.now()) {
		return ProfileUpdate{}, fiber.NewError(http.StatusBadRequest, msgFutureDOB)
	}

	firstName, ok1 := body.FirstName.(string)
	lastName, ok2 := body.LastName.(string)
	address, ok3 := body.Address.(string)
	if !ok1 || !ok2 || !ok3 {
		return ProfileUpdate{}, fiber.NewError(http.StatusBadRequest, msgProfileNotStrings)
	}
	req := profileUpdateRequest{FirstName: firstName, LastName: lastName, Address: address}
	if err := validation.Struct(req); err != nil {
		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			return ProfileUpdate{}, err
		}
		return ProfileUpdate{}, fiber.NewError(http.StatusBadRequest, msgProfileNotStrings)
	}

	return ProfileUpdate{FirstName: firstName, LastName: lastName, DOB: dob, Address: address}, nil
}

// present mirrors JSON truthiness: null, "", 0 and false count as missing.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}
