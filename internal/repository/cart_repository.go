package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saboresunicos/ordering-service/internal/domain"
)

// CartRepository stores per-session carts.
type CartRepository interface {
	Get(ctx context.Context, id string) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
	Delete(ctx context.Context, id string) error
}

type cartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository returns a Redis-backed implementation. Carts are JSON
// values under a cart: key; the TTL is refreshed on every save so active
// sessions do not expire mid-order.
func NewCartRepository(client *redis.Client, ttl time.Duration) CartRepository {
	return &cartRepository{client: client, ttl: ttl}
}

func cartKey(id string) string {
	return fmt.Sprintf("cart:%s", id)
}

func (r *cartRepository) Get(ctx context.Context, id string) (domain.Cart, error) {
	raw, err := r.client.Get(ctx, cartKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Cart{}, domain.ErrCartNotFound
		}
		return domain.Cart{}, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(cart.ID), raw, r.ttl).Err()
}

func (r *cartRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, cartKey(id)).Err()
}
