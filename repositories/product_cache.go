package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"

	"kadima-pos/models"
)

var ErrCacheMiss = errors.New("cache miss")

const ProductCacheTTL = 5 * time.Minute

// ProductCache keeps each store's active product list in redis. A nil client
// turns every call into a miss or a no-op.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client, ttl: ProductCacheTTL}
}

func catalogKey(storeID string) string {
	return "catalog:" + storeID
}

func (c *ProductCache) Get(ctx context.Context, storeID string) ([]models.Product, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, catalogKey(storeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, errors.Wrap(err, "decode cached products")
	}
	return products, nil
}

func (c *ProductCache) Set(ctx context.Context, storeID string, products []models.Product) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "encode products")
	}
	return errors.Wrap(c.client.Set(ctx, catalogKey(storeID), raw, c.ttl).Err(), "redis set")
}

func (c *ProductCache) Invalidate(ctx context.Context, storeID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return errors.Wrap(c.client.Del(ctx, catalogKey(storeID)).Err(), "redis del")
}
