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

// CartHandler exposes cart session endpoints.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Create handles POST /cart.
func (h *CartHandler) Create(c *fiber.Ctx) error {
	cart, err := h.carts.CreateCart(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(cart)
}

// Get handles GET /cart/:id.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	cart, err := h.carts.GetCart(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapCartError(err)
	}
	return c.JSON(cart)
}

// AddItem handles POST /cart/:id/items.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req dto.CartAddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.DishID == "" {
		return apperrors.NewValidationError("dish_id required", nil)
	}

	cart, err := h.carts.AddItem(c.UserContext(), c.Params("id"), req.DishID)
	if err != nil {
		return mapCartError(err)
	}
	return c.JSON(cart)
}

// SetQuantity handles PUT /cart/:id/items/:dishId. A quantity of zero or
// less removes the line.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var req dto.CartSetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	cart, err := h.carts.SetQuantity(c.UserContext(), c.Params("id"), c.Params("dishId"), req.Quantity)
	if err != nil {
		return mapCartError(err)
	}
	return c.JSON(cart)
}

// RemoveItem handles DELETE /cart/:id/items/:dishId.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	cart, err := h.carts.RemoveItem(c.UserContext(), c.Params("id"), c.Params("dishId"))
	if err != nil {
		return mapCartError(err)
	}
	return c.JSON(cart)
}

// Clear handles DELETE /cart/:id.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	cart, err := h.carts.ClearCart(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapCartError(err)
	}
	return c.JSON(cart)
}

// Checkout handles POST /cart/:id/checkout.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Phone == "" {
		return apperrors.NewValidationError("name and phone required", nil)
	}

	order, err := h.carts.Checkout(c.UserContext(), c.Params("id"), domain.CustomerInfo{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		return mapCartError(err)
	}

	return c.JSON(fiber.Map{
		"order_id":     order.ID,
		"total":        order.Total,
		"whatsapp_url": order.WhatsAppURL,
	})
}

func mapCartError(err error) error {
	switch {
	case errors.Is(err, domain.ErrCartNotFound):
		return apperrors.NewNotFound("cart", nil)
	case errors.Is(err, domain.ErrDishNotFound):
		return apperrors.NewNotFound("dish", nil)
	case errors.Is(err, domain.ErrDishUnavailable):
		return apperrors.NewValidationError("dish not available", nil)
	case errors.Is(err, domain.ErrEmptyCart):
		return apperrors.NewValidationError("cart is empty", nil)
	}
	return apperrors.MapError(err)
}
