package domain

// Dish is a menu entry shown in the catalog and orderable through the cart.
type Dish struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// DishUpdate carries the fields of a partial dish update. Nil fields keep
// their current value.
type DishUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Image       *string
	Category    *string
	Available   *bool
}
