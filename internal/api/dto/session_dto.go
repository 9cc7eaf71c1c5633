package dto

import (
	"time"

	"github.com/saboresunicos/ordering-service/internal/domain"
)

// LoginRequest payload for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returned on successful login.
type LoginResponse struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	User      domain.PublicAccount `json:"user"`
}

// UpdateAccountRequest payload for PUT /account/update. Optional fields are
// pointers so "not supplied" and "empty" stay distinguishable.
type UpdateAccountRequest struct {
	Username        *string `json:"username"`
	Email           *string `json:"email"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"`
}

// UpdateAccountResponse returned on successful update.
type UpdateAccountResponse struct {
	User domain.PublicAccount `json:"user"`
}
