package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/saboresunicos/ordering-service/internal/auth"
	"github.com/saboresunicos/ordering-service/internal/config"
	"github.com/saboresunicos/ordering-service/internal/domain"
	"github.com/saboresunicos/ordering-service/internal/events"
	"github.com/saboresunicos/ordering-service/internal/repository"
)

// SessionService orchestrates login and account updates.
type SessionService struct {
	accounts   repository.AccountRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewSessionService builds the service.
func NewSessionService(cfg config.AuthConfig, accounts repository.AccountRepository, dispatcher events.Dispatcher) *SessionService {
	return &SessionService{
		accounts:   accounts,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// UpdateAccountInput carries the fields of an account update request.
// CurrentPassword is required for any change; the other fields are optional.
type UpdateAccountInput struct {
	Username        *string
	Email           *string
	CurrentPassword string
	NewPassword     *string
}

// Login verifies credentials and issues a session token. An unknown username
// and a wrong password both return ErrInvalidCredentials so the response
// never reveals which usernames exist.
func (s *SessionService) Login(ctx context.Context, username, password string) (string, time.Time, domain.PublicAccount, error) {
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", time.Time{}, domain.PublicAccount{}, domain.ErrInvalidCredentials
		}
		return "", time.Time{}, domain.PublicAccount{}, err
	}

	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return "", time.Time{}, domain.PublicAccount{}, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(account)
	if err != nil {
		return "", time.Time{}, domain.PublicAccount{}, err
	}
	return token, expiresAt, account.Public(), nil
}

// UpdateAccount applies a partial update after verifying the current
// password. Username and email uniqueness are pre-checked here; the store's
// unique constraints remain the last line of defense when two updates race,
// and their rejection maps to the same field-specific error.
func (s *SessionService) UpdateAccount(ctx context.Context, accountID int, input UpdateAccountInput) (domain.PublicAccount, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return domain.PublicAccount{}, err
	}

	if err := auth.ComparePassword(account.PasswordHash, input.CurrentPassword); err != nil {
		return domain.PublicAccount{}, domain.ErrInvalidCredentials
	}

	var fields domain.AccountUpdate
	var changed []string

	if input.Username != nil && *input.Username != account.Username {
		if _, err := s.accounts.FindByUsername(ctx, *input.Username); err == nil {
			return domain.PublicAccount{}, domain.ErrUsernameTaken
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return domain.PublicAccount{}, err
		}
		fields.Username = input.Username
		changed = append(changed, "username")
	}

	if input.Email != nil && *input.Email != account.Email {
		if _, err := s.accounts.FindByEmail(ctx, *input.Email); err == nil {
			return domain.PublicAccount{}, domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return domain.PublicAccount{}, err
		}
		fields.Email = input.Email
		changed = append(changed, "email")
	}

	if input.NewPassword != nil {
		hash, err := auth.HashPassword(*input.NewPassword, s.bcryptCost)
		if err != nil {
			return domain.PublicAccount{}, err
		}
		fields.PasswordHash = &hash
		changed = append(changed, "password")
	}

	if fields.Empty() {
		return account.Public(), nil
	}

	updated, err := s.accounts.Update(ctx, accountID, fields)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			return domain.PublicAccount{}, domain.ErrUsernameTaken
		case errors.Is(err, domain.ErrDuplicateEmail):
			return domain.PublicAccount{}, domain.ErrEmailTaken
		}
		return domain.PublicAccount{}, err
	}

	s.publishAccountUpdated(ctx, updated.ID, changed)
	return updated.Public(), nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *SessionService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *SessionService) publishAccountUpdated(ctx context.Context, accountID int, fields []string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAccountUpdated,
		Timestamp: time.Now(),
		Payload: events.AccountUpdatedPayload{
			AccountID: accountID,
			Fields:    fields,
		},
	})
}
