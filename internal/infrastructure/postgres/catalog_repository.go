package postgres

import (
	"context"
	"fmt"
)

// CatalogRepository valida que las referencias de catálogo de un producto
// pertenezcan a la empresa.
type CatalogRepository struct {
	db Querier
}

func NewCatalogRepository(db Querier) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ValidateProductRefs(ctx context.Context, companyID, categoryID, providerID int64) (bool, bool, error) {
	var categoryOK, providerOK bool
	err := r.db.QueryRow(ctx, `
		SELECT
			EXISTS(SELECT 1 FROM categorias WHERE id = $1 AND empresa_id = $3),
			EXISTS(SELECT 1 FROM proveedores WHERE id = $2 AND empresa_id = $3)`,
		categoryID, providerID, companyID,
	).Scan(&categoryOK, &providerOK)
	if err != nil {
		return false, false, fmt.Errorf("validando referencias de catálogo: %w", err)
	}
	return categoryOK, providerOK, nil
}
