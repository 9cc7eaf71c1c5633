package domain

// CartItem is one order line: a dish and how many of it.
type CartItem struct {
	Dish     Dish `json:"dish"`
	Quantity int  `json:"quantity"`
}

// Cart holds the order lines of one client session. Total always equals the
// sum of price times quantity over all lines, and no two lines reference the
// same dish. Mutations return a new value; the zero-items cart has total 0.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// NewCart returns an empty cart with the given session id.
func NewCart(id string) Cart {
	return Cart{ID: id, Items: []CartItem{}}
}

// AddItem adds one unit of the dish, merging into an existing line when the
// dish is already in the cart.
func (c Cart) AddItem(dish Dish) Cart {
	items := make([]CartItem, 0, len(c.Items)+1)
	merged := false
	for _, item := range c.Items {
		if item.Dish.ID == dish.ID {
			item.Quantity++
			merged = true
		}
		items = append(items, item)
	}
	if !merged {
		items = append(items, CartItem{Dish: dish, Quantity: 1})
	}
	return Cart{ID: c.ID, Items: items, Total: sumItems(items)}
}

// RemoveItem drops the line for the dish. Removing an absent dish is a no-op.
func (c Cart) RemoveItem(dishID string) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Dish.ID != dishID {
			items = append(items, item)
		}
	}
	return Cart{ID: c.ID, Items: items, Total: sumItems(items)}
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line.
func (c Cart) SetQuantity(dishID string, quantity int) Cart {
	if quantity <= 0 {
		return c.RemoveItem(dishID)
	}
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Dish.ID == dishID {
			item.Quantity = quantity
		}
		items = append(items, item)
	}
	return Cart{ID: c.ID, Items: items, Total: sumItems(items)}
}

// Clear empties the cart.
func (c Cart) Clear() Cart {
	return NewCart(c.ID)
}

// ItemCount returns the total number of units across all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

func sumItems(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Dish.Price * float64(item.Quantity)
	}
	return total
}
