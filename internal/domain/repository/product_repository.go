package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

// CatalogProductRow es la vista del producto para listados (incluye nombres de
// categoría y proveedor resueltos por join).
type CatalogProductRow struct {
	ID           int64
	CompanyID    int64
	Description  string
	Stock        int64
	Cost         decimal.Decimal
	Price        decimal.Decimal
	CategoryID   int64
	ProviderID   int64
	CategoryName string
	ProviderName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones de lectura/escritura están acotadas a la empresa:
// un id que no pertenece al tenant se comporta como inexistente.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, companyID, id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	// El bloqueo se mantiene hasta el commit o rollback de la transacción.
	GetForUpdate(ctx context.Context, companyID, id int64) (*entity.Product, error)
	// AdjustStock aplica stock = stock + delta sobre la fila ya bloqueada y
	// devuelve el stock resultante.
	AdjustStock(ctx context.Context, companyID, id, delta int64) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, companyID, id int64) error
	// List devuelve los productos con nombres de categoría y proveedor.
	// companyID nil = sin filtro de tenant (lectura cross-tenant del super_admin).
	List(ctx context.Context, companyID *int64) ([]*CatalogProductRow, error)
}
