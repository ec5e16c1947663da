package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

// SaleDetailRow es una línea de venta con la descripción del producto resuelta.
type SaleDetailRow struct {
	ProductID   int64
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
	Subtotal    decimal.Decimal
}

// SaleRepository define el puerto de persistencia para la venta y sus hijos.
// Las tres inserciones deben ejecutarse dentro de la misma transacción que el
// folio y los débitos de stock.
type SaleRepository interface {
	CreateSale(ctx context.Context, sale *entity.Sale) (int64, error)
	CreateDetail(ctx context.Context, detail *entity.SaleDetail) error
	CreatePayment(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.Sale, error)
	GetDetails(ctx context.Context, saleID int64) ([]*SaleDetailRow, error)
	GetPayments(ctx context.Context, saleID int64) ([]*entity.Payment, error)
}
