package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/saboresunicos/ordering-service/internal/domain"
	apperrors "github.com/saboresunicos/ordering-service/pkg/util/errorutil"
)

func guardApp(tm *TokenManager, extra ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
			}
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		},
	})
	guard := NewGuard(tm)

	handlers := append([]fiber.Handler{guard.Handle}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return errors.New("identity missing after guard")
		}
		return c.JSON(fiber.Map{"username": identity.Username, "role": identity.Role})
	})
	app.Get("/protected", handlers...)
	return app
}

func statusOf(t *testing.T, app *fiber.App, req *http.Request) int {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestGuard_MissingHeaderIsUnauthenticated(t *testing.T) {
	app := guardApp(NewTokenManager("secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if status := statusOf(t, app, req); status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestGuard_MalformedHeaderIsUnauthenticated(t *testing.T) {
	app := guardApp(NewTokenManager("secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	if status := statusOf(t, app, req); status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestGuard_InvalidTokenIsForbidden(t *testing.T) {
	app := guardApp(NewTokenManager("secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	if status := statusOf(t, app, req); status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
}

func TestGuard_ExpiredTokenIsForbidden(t *testing.T) {
	tm := &TokenManager{secret: []byte("secret"), ttl: -time.Minute}
	token, _, err := tm.GenerateToken(&domain.Account{ID: 1, Username: "admin", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	app := guardApp(tm)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if status := statusOf(t, app, req); status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
}

func TestGuard_ValidTokenAttachesIdentity(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	token, _, err := tm.GenerateToken(&domain.Account{ID: 1, Username: "admin", Email: "admin@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	app := guardApp(tm)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if status := statusOf(t, app, req); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestRequireAdmin_RejectsUserRole(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	token, _, err := tm.GenerateToken(&domain.Account{ID: 2, Username: "cliente", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	app := guardApp(tm, RequireAdmin())
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if status := statusOf(t, app, req); status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
}

func TestRequireAdmin_AllowsAdminRole(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	token, _, err := tm.GenerateToken(&domain.Account{ID: 1, Username: "admin", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	app := guardApp(tm, RequireAdmin())
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if status := statusOf(t, app, req); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}
