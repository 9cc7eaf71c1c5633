package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/saboresunicos/ordering-service/internal/api/dto"
	"github.com/saboresunicos/ordering-service/internal/domain"
	"github.com/saboresunicos/ordering-service/internal/service"
	apperrors "github.com/saboresunicos/ordering-service/pkg/util/errorutil"
)

// SessionHandler exposes the login endpoint.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login handles POST /login. The failure message stays generic so callers
// cannot probe which usernames exist.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	token, expiresAt, user, err := h.sessions.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("invalid credentials")
		}
		return apperrors.MapError(err)
	}

	return c.JSON(dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}
