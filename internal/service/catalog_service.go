package service

import (
	"github.com/saboresunicos/ordering-service/internal/domain"
	"github.com/saboresunicos/ordering-service/internal/repository"
)

// CatalogService exposes the menu and its admin-panel mutations. Reads are
// public; writes are gated behind the admin role at the route level.
type CatalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService builds the service.
func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListDishes returns the menu, optionally restricted to available dishes.
func (s *CatalogService) ListDishes(onlyAvailable bool) []domain.Dish {
	return s.catalog.List(onlyAvailable)
}

// GetDish returns a single dish.
func (s *CatalogService) GetDish(id string) (domain.Dish, error) {
	return s.catalog.Get(id)
}

// CreateDish adds a dish to the menu.
func (s *CatalogService) CreateDish(dish domain.Dish) domain.Dish {
	return s.catalog.Create(dish)
}

// UpdateDish applies a partial update to a dish.
func (s *CatalogService) UpdateDish(id string, fields domain.DishUpdate) (domain.Dish, error) {
	return s.catalog.Update(id, fields)
}

// DeleteDish removes a dish from the menu.
func (s *CatalogService) DeleteDish(id string) error {
	return s.catalog.Delete(id)
}
