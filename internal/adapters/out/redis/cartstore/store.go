// Package cartstore keeps session carts in Redis as JSON blobs with a
// sliding expiry. Every Save pushes the expiry forward.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 7 * 24 * time.Hour

type cartDTO struct {
	ID    string    `json:"id"`
	Items []itemDTO `json:"items"`
}

type itemDTO struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Stock    int    `json:"stock"`
}

// RedisCartStore implements ports.CartStore.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCartStore uses DefaultTTL when ttl is not positive.
func NewRedisCartStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCartStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "cart_store"),
	}
}

// Load returns a new empty cart for a missing key. An unreadable blob is
// logged and replaced by an empty cart as well.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cacheKey(sessionID)).Bytes()
	return s.cartFrom(ctx, sessionID, "get", data, err)
}

// Claim reads and removes the session's cart with one GETDEL, so only one
// caller ever receives a given cart. Missing and unreadable carts come back
// empty, as in Load.
func (s *RedisCartStore) Claim(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.GetDel(ctx, cacheKey(sessionID)).Bytes()
	return s.cartFrom(ctx, sessionID, "getdel", data, err)
}

func (s *RedisCartStore) cartFrom(ctx context.Context, sessionID, op string, data []byte, err error) (*cart.Cart, error) {
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(kernel.NewUUID())
	}
	if err != nil {
		return nil, fmt.Errorf("redis %s failed: %w", op, err)
	}

	c, err := decode(data)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding unreadable cart", "session_id", sessionID, "error", err)
		return cart.NewCart(kernel.NewUUID())
	}
	return c, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(encode(c))
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err = s.client.Set(ctx, cacheKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cacheKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func encode(c *cart.Cart) cartDTO {
	items := c.Items()
	dto := cartDTO{ID: c.ID().String(), Items: make([]itemDTO, 0, len(items))}
	for _, item := range items {
		dto.Items = append(dto.Items, itemDTO{
			BookID:   item.BookID.String(),
			Title:    item.Title,
			Author:   item.Author,
			ImageURL: item.ImageURL,
			Price:    item.Price.String(),
			Quantity: item.Quantity,
			Stock:    item.StockSnapshot,
		})
	}
	return dto
}

func decode(data []byte) (*cart.Cart, error) {
	var dto cartDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, raw := range dto.Items {
		bookID, idErr := kernel.UUIDFromString(raw.BookID)
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.MoneyFromString(raw.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		items = append(items, cart.Item{
			BookID:        bookID,
			Title:         raw.Title,
			Author:        raw.Author,
			ImageURL:      raw.ImageURL,
			Price:         price,
			Quantity:      raw.Quantity,
			StockSnapshot: raw.Stock,
		})
	}

	return cart.RestoreCart(id, items)
}
