package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/saboresunicos/ordering-service/internal/domain"
	apperrors "github.com/saboresunicos/ordering-service/pkg/util/errorutil"
)

const identityKey = "auth_identity"

// Identity represents the authenticated caller as carried by the token.
type Identity struct {
	AccountID int
	Username  string
	Email     string
	Role      domain.Role
}

// Guard validates bearer tokens and attaches the caller identity.
type Guard struct {
	tokens *TokenManager
}

// NewGuard constructs the middleware.
func NewGuard(tokens *TokenManager) *Guard {
	return &Guard{tokens: tokens}
}

// Handle enforces authentication for protected routes. A missing or
// malformed header is unauthenticated (401); a token that fails signature or
// expiry checks is forbidden (403).
func (g *Guard) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := g.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewForbidden("invalid or expired token")
	}

	c.Locals(identityKey, &Identity{
		AccountID: claims.AccountID,
		Username:  claims.Username,
		Email:     claims.Email,
		Role:      claims.Role,
	})
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
