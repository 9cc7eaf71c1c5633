package service

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/saboresunicos/ordering-service/internal/config"
	"github.com/saboresunicos/ordering-service/internal/domain"
	"github.com/saboresunicos/ordering-service/internal/events"
	"github.com/saboresunicos/ordering-service/internal/repository"
)

type memoryCartRepo struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{carts: make(map[string]domain.Cart)}
}

func (r *memoryCartRepo) Get(_ context.Context, id string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[id]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	return cart, nil
}

func (r *memoryCartRepo) Save(_ context.Context, cart domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.ID] = cart
	return nil
}

func (r *memoryCartRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, id)
	return nil
}

type capturingDispatcher struct {
	events []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.events = append(d.events, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func testRestaurant() config.RestaurantConfig {
	return config.RestaurantConfig{
		Name:           "Sabores Únicos",
		WhatsAppNumber: "+5493405500324",
	}
}

func testCatalog() repository.CatalogRepository {
	return repository.NewCatalogRepository([]domain.Dish{
		{ID: "1", Title: "Pizza Margherita", Price: 12.99, Category: "Pizzas", Available: true},
		{ID: "2", Title: "Hamburguesa Deluxe", Price: 15.99, Category: "Hamburguesas", Available: true},
		{ID: "3", Title: "Plato Agotado", Price: 9.99, Category: "Especiales", Available: false},
	})
}

func newTestCartService() (*CartService, *capturingDispatcher) {
	dispatcher := &capturingDispatcher{}
	svc := NewCartService(newMemoryCartRepo(), testCatalog(), dispatcher, testRestaurant())
	return svc, dispatcher
}

func TestCartService_AddSameDishTwiceMergesLine(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx)
	if err != nil {
		t.Fatalf("CreateCart returned error: %v", err)
	}

	if cart, err = svc.AddItem(ctx, cart.ID, "1"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if cart, err = svc.AddItem(ctx, cart.ID, "1"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", cart.Items)
	}
	if math.Abs(cart.Total-25.98) > 1e-9 {
		t.Fatalf("expected total 25.98, got %f", cart.Total)
	}
}

func TestCartService_SetQuantityZeroRemoves(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	if _, err := svc.AddItem(ctx, cart.ID, "1"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	cart, err := svc.SetQuantity(ctx, cart.ID, "1", 0)
	if err != nil {
		t.Fatalf("SetQuantity returned error: %v", err)
	}
	if !cart.Empty() || cart.Total != 0 {
		t.Fatalf("expected empty cart with total 0, got %+v", cart)
	}
}

func TestCartService_RejectsUnavailableDish(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	if _, err := svc.AddItem(ctx, cart.ID, "3"); !errors.Is(err, domain.ErrDishUnavailable) {
		t.Fatalf("expected ErrDishUnavailable, got %v", err)
	}
}

func TestCartService_UnknownDishAndCart(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	if _, err := svc.AddItem(ctx, cart.ID, "missing"); !errors.Is(err, domain.ErrDishNotFound) {
		t.Fatalf("expected ErrDishNotFound, got %v", err)
	}
	if _, err := svc.GetCart(ctx, "missing"); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestCartService_CheckoutBuildsWhatsAppOrder(t *testing.T) {
	svc, dispatcher := newTestCartService()
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	if _, err := svc.AddItem(ctx, cart.ID, "1"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if _, err := svc.AddItem(ctx, cart.ID, "2"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	order, err := svc.Checkout(ctx, cart.ID, domain.CustomerInfo{
		Name:  "María",
		Phone: "+549111222333",
		Notes: "sin cebolla",
	})
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}

	if math.Abs(order.Total-28.98) > 1e-9 {
		t.Fatalf("expected total 28.98, got %f", order.Total)
	}
	if !strings.HasPrefix(order.WhatsAppURL, "https://wa.me/+5493405500324?") {
		t.Fatalf("unexpected deep link: %s", order.WhatsAppURL)
	}

	parsed, err := url.Parse(order.WhatsAppURL)
	if err != nil {
		t.Fatalf("deep link does not parse: %v", err)
	}
	message := parsed.Query().Get("text")
	for _, want := range []string{
		"Nueva Orden - Sabores Únicos",
		"Cliente:* María",
		"Pizza Margherita x1 - $12.99",
		"Hamburguesa Deluxe x1 - $15.99",
		"Total: $28.98",
		"Notas:* sin cebolla",
	} {
		if !strings.Contains(message, want) {
			t.Fatalf("message missing %q:\n%s", want, message)
		}
	}

	if len(dispatcher.events) != 1 || dispatcher.events[0].Type != events.EventOrderSubmitted {
		t.Fatalf("expected one order_submitted event, got %+v", dispatcher.events)
	}

	if _, err := svc.GetCart(ctx, cart.ID); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("cart must be cleared after checkout, got %v", err)
	}
}

func TestCartService_CheckoutEmptyCart(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	if _, err := svc.Checkout(ctx, cart.ID, domain.CustomerInfo{Name: "María", Phone: "+54"}); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}
