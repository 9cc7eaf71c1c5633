package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saboresunicos/ordering-service/internal/api/http/handlers"
	"github.com/saboresunicos/ordering-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Session *handlers.SessionHandler
	Account *handlers.AccountHandler
	Dishes  *handlers.DishHandler
	Cart    *handlers.CartHandler
	Guard   *auth.Guard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Session.Login)

	account := app.Group("/account", cfg.Guard.Handle)
	account.Put("/update", cfg.Account.Update)

	dishes := app.Group("/dishes")
	dishes.Get("/", cfg.Dishes.List)
	dishes.Get("/:id", cfg.Dishes.Get)

	adminDishes := dishes.Group("", cfg.Guard.Handle, auth.RequireAdmin())
	adminDishes.Post("/", cfg.Dishes.Create)
	adminDishes.Put("/:id", cfg.Dishes.Update)
	adminDishes.Delete("/:id", cfg.Dishes.Delete)

	cart := app.Group("/cart")
	cart.Post("/", cfg.Cart.Create)
	cart.Get("/:id", cfg.Cart.Get)
	cart.Post("/:id/items", cfg.Cart.AddItem)
	cart.Put("/:id/items/:dishId", cfg.Cart.SetQuantity)
	cart.Delete("/:id/items/:dishId", cfg.Cart.RemoveItem)
	cart.Delete("/:id", cfg.Cart.Clear)
	cart.Post("/:id/checkout", cfg.Cart.Checkout)
}
