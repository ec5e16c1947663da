package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleReportLine es una línea anidada en el reporte de ventas.
type SaleReportLine struct {
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// SaleReportRow es una venta del reporte con sus líneas agregadas.
// ClientName y SellerName llegan con valores por defecto cuando la venta no
// tiene cliente o vendedor registrado.
type SaleReportRow struct {
	ID         int64
	Folio      int64
	SoldAt     time.Time
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
	IsInvoice  bool
	ClientName string
	SellerName string
	Lines      []SaleReportLine
}

// SoldProductRow es una fila del reporte de productos vendidos (análisis de margen).
type SoldProductRow struct {
	SoldAt      time.Time
	ProductID   int64
	Description string
	Quantity    int64
	Revenue     decimal.Decimal // subtotal de la línea
	UnitPrice   decimal.Decimal
	Cost        decimal.Decimal // costo_unitario * cantidad
}

// ReportRepository define consultas de solo lectura sobre ventas y su detalle.
// Sin bloqueos: tolera escritores concurrentes con la lectura consistente del
// datastore.
type ReportRepository interface {
	SalesReport(ctx context.Context, companyID int64, from, to *time.Time) ([]*SaleReportRow, error)
	SoldProducts(ctx context.Context, companyID int64, from, to *time.Time) ([]*SoldProductRow, error)
}
