package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
)

// RedisCache cachea el catálogo PDV en Redis, una llave por empresa.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func catalogKey(companyID int64) string {
	return fmt.Sprintf("catalogo:empresa:%d", companyID)
}

func (c *RedisCache) Get(ctx context.Context, companyID int64) ([]dto.CatalogProductDTO, bool, error) {
	raw, err := c.client.Get(ctx, catalogKey(companyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leyendo catálogo de redis: %w", err)
	}

	var products []dto.CatalogProductDTO
	if err := json.Unmarshal(raw, &products); err != nil {
		// Entrada corrupta: tratarla como miss y dejar que el Set la reemplace.
		return nil, false, nil
	}
	return products, true, nil
}

func (c *RedisCache) Set(ctx context.Context, companyID int64, products []dto.CatalogProductDTO, ttl time.Duration) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("serializando catálogo: %w", err)
	}
	if err := c.client.Set(ctx, catalogKey(companyID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("escribiendo catálogo en redis: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, companyID int64) error {
	if err := c.client.Del(ctx, catalogKey(companyID)).Err(); err != nil {
		return fmt.Errorf("invalidando catálogo en redis: %w", err)
	}
	return nil
}
