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

// DishHandler exposes catalog endpoints. Reads are public; writes are
// admin-gated at the route level.
type DishHandler struct {
	catalog *service.CatalogService
}

// NewDishHandler constructs handler.
func NewDishHandler(catalog *service.CatalogService) *DishHandler {
	return &DishHandler{catalog: catalog}
}

// List handles GET /dishes.
func (h *DishHandler) List(c *fiber.Ctx) error {
	onlyAvailable := c.Query("available") == "true"
	return c.JSON(fiber.Map{"dishes": h.catalog.ListDishes(onlyAvailable)})
}

// Get handles GET /dishes/:id.
func (h *DishHandler) Get(c *fiber.Ctx) error {
	dish, err := h.catalog.GetDish(c.Params("id"))
	if err != nil {
		return apperrors.NewNotFound("dish", nil)
	}
	return c.JSON(dish)
}

// Create handles POST /dishes.
func (h *DishHandler) Create(c *fiber.Ctx) error {
	var req dto.DishCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.Category == "" {
		return apperrors.NewValidationError("title and category required", nil)
	}
	if req.Price <= 0 {
		return apperrors.NewValidationError("price must be positive", nil)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	dish := h.catalog.CreateDish(domain.Dish{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Available:   available,
	})
	return c.Status(http.StatusCreated).JSON(dish)
}

// Update handles PUT /dishes/:id.
func (h *DishHandler) Update(c *fiber.Ctx) error {
	var req dto.DishUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Price != nil && *req.Price <= 0 {
		return apperrors.NewValidationError("price must be positive", nil)
	}

	dish, err := h.catalog.UpdateDish(c.Params("id"), domain.DishUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Available:   req.Available,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return apperrors.NewNotFound("dish", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dish)
}

// Delete handles DELETE /dishes/:id.
func (h *DishHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteDish(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return apperrors.NewNotFound("dish", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
