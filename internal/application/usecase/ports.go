package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
)

// CatalogCache cachea el catálogo PDV por empresa. El stock mostrado es una
// vista previa: el protocolo de venta siempre relee el stock bajo bloqueo, así
// que un valor obsoleto aquí nunca corrompe una transacción.
type CatalogCache interface {
	Get(ctx context.Context, companyID int64) ([]dto.CatalogProductDTO, bool, error)
	Set(ctx context.Context, companyID int64, products []dto.CatalogProductDTO, ttl time.Duration) error
	Invalidate(ctx context.Context, companyID int64) error
}
