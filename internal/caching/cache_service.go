// Package caching provides a Redis read-through cache for inventory lookups.
// Cache failures are never fatal: callers log and fall through to Postgres.
package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
)

// DefaultTTL bounds staleness for cached reads; every mutation invalidates
// eagerly so the TTL is only a backstop.
const DefaultTTL = 5 * time.Minute

type CacheService interface {
	// GetItem returns (nil, nil) on a cache miss.
	GetItem(ctx context.Context, name string) (*models.InventoryItem, error)
	SetItem(ctx context.Context, item *models.InventoryItem, ttl time.Duration) error
	DeleteItem(ctx context.Context, name string) error

	// GetItemList caches the full inventory listing (without derived status).
	GetItemList(ctx context.Context) ([]*models.InventoryItem, error)
	SetItemList(ctx context.Context, items []*models.InventoryItem, ttl time.Duration) error
	DeleteItemList(ctx context.Context) error

	// InvalidateAll drops every inventory key, used by the administrative clear.
	InvalidateAll(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

func itemKey(name string) string {
	return "inventory:item:" + strings.ToLower(name)
}

const listKey = "inventory:list"

func (r *redisCacheService) GetItem(ctx context.Context, name string) (*models.InventoryItem, error) {
	data, err := r.client.Get(ctx, itemKey(name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var item models.InventoryItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("unmarshal cached item: %w", err)
	}
	return &item, nil
}

func (r *redisCacheService) SetItem(ctx context.Context, item *models.InventoryItem, ttl time.Duration) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	return r.client.Set(ctx, itemKey(item.Name), data, ttl).Err()
}

func (r *redisCacheService) DeleteItem(ctx context.Context, name string) error {
	return r.client.Del(ctx, itemKey(name)).Err()
}

func (r *redisCacheService) GetItemList(ctx context.Context) ([]*models.InventoryItem, error) {
	data, err := r.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var items []*models.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal cached list: %w", err)
	}
	return items, nil
}

func (r *redisCacheService) SetItemList(ctx context.Context, items []*models.InventoryItem, ttl time.Duration) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal item list: %w", err)
	}
	return r.client.Set(ctx, listKey, data, ttl).Err()
}

func (r *redisCacheService) DeleteItemList(ctx context.Context) error {
	return r.client.Del(ctx, listKey).Err()
}

func (r *redisCacheService) InvalidateAll(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "inventory:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
