package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const msgIncompleteCredentials = "Request body incomplete, both email and password are required"

// Handler exposes the register and login endpoints.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler builds an auth HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

// Register creates a user account.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, msgIncompleteCredentials)
	}

	err := h.svc.Register(c.UserContext(), Credentials{Email: req.Email, Password: req.Password})
	switch {
	case err == nil:
	case errors.Is(err, ErrMissingCredentials):
		return fiber.NewError(http.StatusBadRequest, msgIncompleteCredentials)
	case errors.Is(err, ErrUserExists):
		return fiber.NewError(http.StatusConflict, "User already exists")
	default:
		return err
	}

	if h.logger != nil {
		h.logger.Info("user.register completed", slog.String("email", req.Email), slog.Int("status", http.StatusCreated))
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "User created"})
}

// Login exchanges credentials for a bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, msgIncompleteCredentials)
	}

	token, err := h.svc.Login(c.UserContext(), Credentials{Email: req.Email, Password: req.Password})
	switch {
	case err == nil:
	case errors.Is(err, ErrMissingCredentials):
		return fiber.NewError(http.StatusBadRequest, msgIncompleteCredentials)
	case errors.Is(err, ErrInvalidCredentials):
		return fiber.NewError(http.StatusUnauthorized, "Incorrect email or password")
	default:
		return err
	}

	return c.Status(http.StatusOK).JSON(loginResponse{
		Token:     token.Value,
		TokenType: "Bearer",
		ExpiresIn: h.svc.TokenTTLSeconds(),
	})
}
