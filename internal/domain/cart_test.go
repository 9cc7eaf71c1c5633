package domain

import (
	"math"
	"testing"
)

var (
	pizza  = Dish{ID: "1", Title: "Pizza Margherita", Price: 12.99, Category: "Pizzas", Available: true}
	burger = Dish{ID: "2", Title: "Hamburguesa Deluxe", Price: 15.99, Category: "Hamburguesas", Available: true}
)

func assertInvariant(t *testing.T, cart Cart) {
	t.Helper()
	expected := 0.0
	seen := map[string]bool{}
	for _, item := range cart.Items {
		if item.Quantity < 1 {
			t.Fatalf("line for %s has quantity %d", item.Dish.ID, item.Quantity)
		}
		if seen[item.Dish.ID] {
			t.Fatalf("duplicate line for dish %s", item.Dish.ID)
		}
		seen[item.Dish.ID] = true
		expected += item.Dish.Price * float64(item.Quantity)
	}
	if math.Abs(cart.Total-expected) > 1e-9 {
		t.Fatalf("total %f does not match sum of lines %f", cart.Total, expected)
	}
}

func TestCart_AddItemMergesLines(t *testing.T) {
	cart := NewCart("c1").AddItem(pizza)
	assertInvariant(t, cart)

	cart = cart.AddItem(pizza)
	assertInvariant(t, cart)

	if len(cart.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
	if math.Abs(cart.Total-25.98) > 1e-9 {
		t.Fatalf("expected total 25.98, got %f", cart.Total)
	}
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart("c1").AddItem(pizza).AddItem(burger)
	cart = cart.SetQuantity(pizza.ID, 0)
	assertInvariant(t, cart)

	if len(cart.Items) != 1 || cart.Items[0].Dish.ID != burger.ID {
		t.Fatalf("expected only the burger line, got %+v", cart.Items)
	}

	cart = cart.SetQuantity(burger.ID, -3)
	assertInvariant(t, cart)
	if !cart.Empty() || cart.Total != 0 {
		t.Fatalf("expected empty cart with total 0, got %+v", cart)
	}
}

func TestCart_SetQuantityReplaces(t *testing.T) {
	cart := NewCart("c1").AddItem(pizza).SetQuantity(pizza.ID, 5)
	assertInvariant(t, cart)

	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestCart_RemoveAbsentDishIsNoop(t *testing.T) {
	cart := NewCart("c1").AddItem(pizza)
	cart = cart.RemoveItem("missing")
	assertInvariant(t, cart)

	if len(cart.Items) != 1 {
		t.Fatalf("expected the pizza line to survive, got %+v", cart.Items)
	}
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("c1").AddItem(pizza).AddItem(burger).Clear()
	assertInvariant(t, cart)

	if !cart.Empty() || cart.Total != 0 || cart.ID != "c1" {
		t.Fatalf("expected empty cart keeping its id, got %+v", cart)
	}
}

func TestCart_InvariantHoldsAfterEveryAction(t *testing.T) {
	cart := NewCart("c1")
	actions := []func(Cart) Cart{
		func(c Cart) Cart { return c.AddItem(pizza) },
		func(c Cart) Cart { return c.AddItem(burger) },
		func(c Cart) Cart { return c.AddItem(pizza) },
		func(c Cart) Cart { return c.SetQuantity(burger.ID, 4) },
		func(c Cart) Cart { return c.RemoveItem(pizza.ID) },
		func(c Cart) Cart { return c.SetQuantity(burger.ID, 0) },
		func(c Cart) Cart { return c.AddItem(burger) },
		func(c Cart) Cart { return c.Clear() },
	}
	for _, action := range actions {
		cart = action(cart)
		assertInvariant(t, cart)
	}
}

func TestCart_ItemCount(t *testing.T) {
	cart := NewCart("c1").AddItem(pizza).AddItem(pizza).AddItem(burger)
	if got := cart.ItemCount(); got != 3 {
		t.Fatalf("expected 3 units, got %d", got)
	}
}
