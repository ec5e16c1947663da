package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es la cabecera de una venta. Inmutable después del commit: no existe
// ruta de actualización ni borrado. Folio es único dentro de la empresa.
type Sale struct {
	ID        int64
	CompanyID int64
	Folio     int64
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal // Subtotal + Tax - Discount
	IsInvoice bool
	ClientID  int64
	SellerID  int64
	UserID    int64
	SoldAt    time.Time
}

// SaleDetail es una línea de venta. UnitPrice y UnitCost son instantáneas al
// momento de la venta; pueden diferir del precio/costo actual del producto.
type SaleDetail struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
	Subtotal  decimal.Decimal // Quantity * UnitPrice
}

// Payment es un pago aplicado a una venta. La suma de pagos debe cubrir el
// total; el excedente es cambio devuelto al cliente y no se persiste.
type Payment struct {
	ID     int64
	SaleID int64
	Method string
	Amount decimal.Decimal
}

// Client es un cliente registrado de la empresa (opcional en ventas de mostrador).
type Client struct {
	ID        int64
	CompanyID int64
	Name      string
}

// Seller es un vendedor de la empresa.
type Seller struct {
	ID        int64
	CompanyID int64
	Name      string
}
