package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/saboresunicos/ordering-service/internal/api/dto"
	"github.com/saboresunicos/ordering-service/internal/auth"
	"github.com/saboresunicos/ordering-service/internal/domain"
	"github.com/saboresunicos/ordering-service/internal/service"
	apperrors "github.com/saboresunicos/ordering-service/pkg/util/errorutil"
)

// AccountHandler exposes the authenticated account-update endpoint.
type AccountHandler struct {
	sessions *service.SessionService
}

// NewAccountHandler constructs handler.
func NewAccountHandler(sessions *service.SessionService) *AccountHandler {
	return &AccountHandler{sessions: sessions}
}

// Update handles PUT /account/update.
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CurrentPassword == "" {
		return apperrors.NewValidationError("current password required", nil)
	}

	user, err := h.sessions.UpdateAccount(c.UserContext(), identity.AccountID, service.UpdateAccountInput{
		Username:        req.Username,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return apperrors.NewValidationError("account not found", nil)
		case errors.Is(err, domain.ErrInvalidCredentials):
			return apperrors.NewUnauthorized("current password incorrect")
		case errors.Is(err, domain.ErrUsernameTaken):
			return apperrors.NewConflict("username already in use", map[string]any{"field": "username"})
		case errors.Is(err, domain.ErrEmailTaken):
			return apperrors.NewConflict("email already in use", map[string]any{"field": "email"})
		}
		return apperrors.MapError(err)
	}

	return c.JSON(dto.UpdateAccountResponse{User: user})
}
