package domain

import "time"

// CustomerInfo is the contact block the customer fills in at checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Order is the result of checking out a cart. Orders are not persisted; they
// are handed to the restaurant as a WhatsApp message the client opens.
type Order struct {
	ID          string       `json:"id"`
	Items       []CartItem   `json:"items"`
	Total       float64      `json:"total"`
	Customer    CustomerInfo `json:"customer"`
	WhatsAppURL string       `json:"whatsapp_url"`
	CreatedAt   time.Time    `json:"created_at"`
}
