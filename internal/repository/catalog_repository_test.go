package repository

import (
	"errors"
	"testing"

	"github.com/saboresunicos/ordering-service/internal/domain"
)

func seedCatalog() CatalogRepository {
	return NewCatalogRepository([]domain.Dish{
		{ID: "1", Title: "Pizza Margherita", Price: 12.99, Category: "Pizzas", Available: true},
		{ID: "2", Title: "Plato Agotado", Price: 9.99, Category: "Especiales", Available: false},
	})
}

func TestCatalogRepository_ListFiltersAvailability(t *testing.T) {
	repo := seedCatalog()

	if got := len(repo.List(false)); got != 2 {
		t.Fatalf("expected 2 dishes, got %d", got)
	}
	available := repo.List(true)
	if len(available) != 1 || available[0].ID != "1" {
		t.Fatalf("expected only dish 1, got %+v", available)
	}
}

func TestCatalogRepository_GetUnknown(t *testing.T) {
	repo := seedCatalog()
	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrDishNotFound) {
		t.Fatalf("expected ErrDishNotFound, got %v", err)
	}
}

func TestCatalogRepository_CreateAssignsID(t *testing.T) {
	repo := seedCatalog()
	dish := repo.Create(domain.Dish{Title: "Tacos al Pastor", Price: 11.99, Category: "Mexicana", Available: true})
	if dish.ID == "" {
		t.Fatal("expected generated id")
	}

	stored, err := repo.Get(dish.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.Title != "Tacos al Pastor" {
		t.Fatalf("unexpected dish: %+v", stored)
	}
}

func TestCatalogRepository_PartialUpdate(t *testing.T) {
	repo := seedCatalog()

	price := 14.50
	available := false
	dish, err := repo.Update("1", domain.DishUpdate{Price: &price, Available: &available})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if dish.Price != 14.50 || dish.Available {
		t.Fatalf("unexpected dish after update: %+v", dish)
	}
	if dish.Title != "Pizza Margherita" {
		t.Fatalf("untouched fields must survive, got %+v", dish)
	}

	if _, err := repo.Update("missing", domain.DishUpdate{Price: &price}); !errors.Is(err, domain.ErrDishNotFound) {
		t.Fatalf("expected ErrDishNotFound, got %v", err)
	}
}

func TestCatalogRepository_Delete(t *testing.T) {
	repo := seedCatalog()
	if err := repo.Delete("1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.Get("1"); !errors.Is(err, domain.ErrDishNotFound) {
		t.Fatalf("expected dish gone, got %v", err)
	}
	if err := repo.Delete("1"); !errors.Is(err, domain.ErrDishNotFound) {
		t.Fatalf("expected ErrDishNotFound on second delete, got %v", err)
	}
}

func TestDefaultMenu_SeedIsCopied(t *testing.T) {
	seed := DefaultMenu()
	repo := NewCatalogRepository(seed)
	seed[0].Title = "mutated"

	dish, err := repo.Get("1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if dish.Title != "Pizza Margherita" {
		t.Fatalf("repository must not alias the seed slice, got %q", dish.Title)
	}
}
