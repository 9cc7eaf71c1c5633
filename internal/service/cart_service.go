package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saboresunicos/ordering-service/internal/config"
	"github.com/saboresunicos/ordering-service/internal/domain"
	"github.com/saboresunicos/ordering-service/internal/events"
	"github.com/saboresunicos/ordering-service/internal/repository"
)

// CartService manages per-session carts and turns them into orders.
type CartService struct {
	carts      repository.CartRepository
	catalog    repository.CatalogRepository
	dispatcher events.Dispatcher
	restaurant config.RestaurantConfig
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository, catalog repository.CatalogRepository, dispatcher events.Dispatcher, restaurant config.RestaurantConfig) *CartService {
	return &CartService{
		carts:      carts,
		catalog:    catalog,
		dispatcher: dispatcher,
		restaurant: restaurant,
	}
}

// CreateCart opens an empty cart session.
func (s *CartService) CreateCart(ctx context.Context) (domain.Cart, error) {
	cart := domain.NewCart(uuid.NewString())
	if err := s.carts.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// GetCart returns the current cart state.
func (s *CartService) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	return s.carts.Get(ctx, cartID)
}

// AddItem adds one unit of the dish to the cart. Unavailable dishes cannot
// be ordered.
func (s *CartService) AddItem(ctx context.Context, cartID, dishID string) (domain.Cart, error) {
	dish, err := s.catalog.Get(dishID)
	if err != nil {
		return domain.Cart{}, err
	}
	if !dish.Available {
		return domain.Cart{}, domain.ErrDishUnavailable
	}
	return s.apply(ctx, cartID, func(cart domain.Cart) domain.Cart {
		return cart.AddItem(dish)
	})
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *CartService) SetQuantity(ctx context.Context, cartID, dishID string, quantity int) (domain.Cart, error) {
	return s.apply(ctx, cartID, func(cart domain.Cart) domain.Cart {
		return cart.SetQuantity(dishID, quantity)
	})
}

// RemoveItem drops the line for the dish.
func (s *CartService) RemoveItem(ctx context.Context, cartID, dishID string) (domain.Cart, error) {
	return s.apply(ctx, cartID, func(cart domain.Cart) domain.Cart {
		return cart.RemoveItem(dishID)
	})
}

// ClearCart empties the cart.
func (s *CartService) ClearCart(ctx context.Context, cartID string) (domain.Cart, error) {
	return s.apply(ctx, cartID, func(cart domain.Cart) domain.Cart {
		return cart.Clear()
	})
}

// Checkout compiles the cart into a WhatsApp order message, emits the order
// event and clears the cart.
func (s *CartService) Checkout(ctx context.Context, cartID string, customer domain.CustomerInfo) (domain.Order, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return domain.Order{}, err
	}
	if cart.Empty() {
		return domain.Order{}, domain.ErrEmptyCart
	}

	order := domain.Order{
		ID:          uuid.NewString(),
		Items:       cart.Items,
		Total:       cart.Total,
		Customer:    customer,
		WhatsAppURL: s.whatsAppURL(cart, customer),
		CreatedAt:   time.Now(),
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderSubmitted,
			Timestamp: order.CreatedAt,
			Payload: events.OrderSubmittedPayload{
				OrderID:      order.ID,
				CartID:       cart.ID,
				CustomerName: customer.Name,
				ItemCount:    cart.ItemCount(),
				Total:        cart.Total,
			},
		})
	}

	if err := s.carts.Delete(ctx, cartID); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// whatsAppURL builds the wa.me deep link carrying the order summary.
func (s *CartService) whatsAppURL(cart domain.Cart, customer domain.CustomerInfo) string {
	message := s.orderMessage(cart, customer)
	query := url.Values{"text": {message}}
	return fmt.Sprintf("https://wa.me/%s?%s", s.restaurant.WhatsAppNumber, query.Encode())
}

func (s *CartService) orderMessage(cart domain.Cart, customer domain.CustomerInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ *Nueva Orden - %s*\n\n", s.restaurant.Name)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", customer.Name)
	fmt.Fprintf(&b, "📞 *Teléfono:* %s\n", customer.Phone)
	if customer.Address != "" {
		fmt.Fprintf(&b, "📍 *Dirección:* %s\n", customer.Address)
	}
	b.WriteString("\n📝 *Pedido:*\n")
	for _, item := range cart.Items {
		fmt.Fprintf(&b, "• %s x%d - $%.2f\n", item.Dish.Title, item.Quantity, item.Dish.Price*float64(item.Quantity))
	}
	fmt.Fprintf(&b, "\n💰 *Total: $%.2f*\n", cart.Total)
	if customer.Notes != "" {
		fmt.Fprintf(&b, "\n📋 *Notas:* %s", customer.Notes)
	}
	return b.String()
}

func (s *CartService) apply(ctx context.Context, cartID string, action func(domain.Cart) domain.Cart) (domain.Cart, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	cart = action(cart)
	if err := s.carts.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}
