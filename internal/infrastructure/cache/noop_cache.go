package cache

import (
	"context"
	"time"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
)

// NoopCache es la implementación nula: siempre miss, nunca falla. Se usa
// cuando no hay Redis configurado, así los casos de uso no distinguen entre
// "sin caché" y "caché vacío".
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(ctx context.Context, companyID int64) ([]dto.CatalogProductDTO, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(ctx context.Context, companyID int64, products []dto.CatalogProductDTO, ttl time.Duration) error {
	return nil
}

func (NoopCache) Invalidate(ctx context.Context, companyID int64) error {
	return nil
}
