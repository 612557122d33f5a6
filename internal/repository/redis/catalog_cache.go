package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eduintel/domain"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:universities:v1"

type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: client,
		ttl:    ttl,
	}
}

// GetCatalog returns ok=false on a cache miss.
func (c *CatalogCache) GetCatalog(ctx context.Context) ([]domain.University, bool, error) {
	val, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get catalog from Redis: %w", err)
	}

	var universities []domain.University
	if err := json.Unmarshal(val, &universities); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	return universities, true, nil
}

func (c *CatalogCache) SetCatalog(ctx context.Context, universities []domain.University) error {
	raw, err := json.Marshal(universities)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store catalog in Redis: %w", err)
	}

	return nil
}

func (c *CatalogCache) InvalidateCatalog(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog: %w", err)
	}
	return nil
}
