package dto

// DishCreateRequest payload for creating a menu entry.
type DishCreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available"`
}

// DishUpdateRequest payload for a partial dish update.
type DishUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
}
