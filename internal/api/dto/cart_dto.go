package dto

// CartAddItemRequest payload for adding a dish to a cart.
type CartAddItemRequest struct {
	DishID string `json:"dish_id"`
}

// CartSetQuantityRequest payload for replacing a line quantity.
type CartSetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest payload with the customer contact block.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}
