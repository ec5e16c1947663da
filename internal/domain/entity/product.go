package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de una empresa.
// Stock solo se muta a través del StockLedger (fila bloqueada con FOR UPDATE);
// nunca por asignación directa fuera de una transacción.
type Product struct {
	ID          int64
	CompanyID   int64
	CategoryID  int64
	ProviderID  int64
	Description string
	Stock       int64
	Cost        decimal.Decimal // costo de compra
	Price       decimal.Decimal // precio de venta
	CreatedAt   time.Time
}

// Category clasifica productos dentro de una empresa.
type Category struct {
	ID        int64
	CompanyID int64
	Name      string
}

// Provider es el proveedor de un producto (catálogo por empresa).
type Provider struct {
	ID        int64
	CompanyID int64
	Name      string
}
