package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/saboresunicos/ordering-service/internal/domain"
)

// CatalogRepository holds the menu. The catalog lives in memory and is seeded
// at boot; accounts are the only state this service persists.
type CatalogRepository interface {
	List(onlyAvailable bool) []domain.Dish
	Get(id string) (domain.Dish, error)
	Create(dish domain.Dish) domain.Dish
	Update(id string, fields domain.DishUpdate) (domain.Dish, error)
	Delete(id string) error
}

type catalogRepository struct {
	mu     sync.RWMutex
	dishes []domain.Dish
}

// NewCatalogRepository returns an in-memory catalog seeded with the given menu.
func NewCatalogRepository(seed []domain.Dish) CatalogRepository {
	dishes := make([]domain.Dish, len(seed))
	copy(dishes, seed)
	return &catalogRepository{dishes: dishes}
}

func (r *catalogRepository) List(onlyAvailable bool) []domain.Dish {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Dish, 0, len(r.dishes))
	for _, dish := range r.dishes {
		if onlyAvailable && !dish.Available {
			continue
		}
		out = append(out, dish)
	}
	return out
}

func (r *catalogRepository) Get(id string) (domain.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, dish := range r.dishes {
		if dish.ID == id {
			return dish, nil
		}
	}
	return domain.Dish{}, domain.ErrDishNotFound
}

func (r *catalogRepository) Create(dish domain.Dish) domain.Dish {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dish.ID == "" {
		dish.ID = uuid.NewString()
	}
	r.dishes = append(r.dishes, dish)
	return dish
}

func (r *catalogRepository) Update(id string, fields domain.DishUpdate) (domain.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, dish := range r.dishes {
		if dish.ID != id {
			continue
		}
		if fields.Title != nil {
			dish.Title = *fields.Title
		}
		if fields.Description != nil {
			dish.Description = *fields.Description
		}
		if fields.Price != nil {
			dish.Price = *fields.Price
		}
		if fields.Image != nil {
			dish.Image = *fields.Image
		}
		if fields.Category != nil {
			dish.Category = *fields.Category
		}
		if fields.Available != nil {
			dish.Available = *fields.Available
		}
		r.dishes[i] = dish
		return dish, nil
	}
	return domain.Dish{}, domain.ErrDishNotFound
}

func (r *catalogRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, dish := range r.dishes {
		if dish.ID == id {
			r.dishes = append(r.dishes[:i], r.dishes[i+1:]...)
			return nil
		}
	}
	return domain.ErrDishNotFound
}
