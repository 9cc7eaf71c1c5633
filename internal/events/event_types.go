package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderSubmitted EventType = "order_submitted"
	EventAccountUpdated EventType = "account_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderSubmittedPayload payload.
type OrderSubmittedPayload struct {
	OrderID      string  `json:"order_id"`
	CartID       string  `json:"cart_id"`
	CustomerName string  `json:"customer_name"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

// AccountUpdatedPayload payload. Fields lists which attributes changed;
// password changes are reported by name only, never by value.
type AccountUpdatedPayload struct {
	AccountID int      `json:"account_id"`
	Fields    []string `json:"fields"`
}
