package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta enviada por el punto de venta.
// PrecioUnitario es opcional: nil o cero usan el precio vigente del producto.
type SaleItemRequest struct {
	ProductoID     int64            `json:"producto_id"`
	Cantidad       int64            `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
}

// PaymentRequest un pago de la venta.
type PaymentRequest struct {
	Metodo string          `json:"metodo"`
	Monto  decimal.Decimal `json:"monto"`
}

// RecordSaleRequest cuerpo de POST /api/admin/ventas.
// ClienteID y VendedorID son opcionales (mostrador/público general).
type RecordSaleRequest struct {
	ClienteID  *int64            `json:"cliente_id,omitempty"`
	VendedorID *int64            `json:"vendedor_id,omitempty"`
	EsFactura  bool              `json:"es_factura"`
	Detalles   []SaleItemRequest `json:"detalles"`
	Pagos      []PaymentRequest  `json:"pagos"`
}

// RecordSaleResponse resultado de una venta confirmada. Cambio no se persiste;
// es la diferencia entre lo pagado y el total.
type RecordSaleResponse struct {
	VentaID int64           `json:"venta_id"`
	Folio   int64           `json:"folio"`
	Cambio  decimal.Decimal `json:"cambio"`
}

// FolioPreviewResponse respuesta de GET /folio_actual (vista previa, sin bloqueo).
type FolioPreviewResponse struct {
	Folio int64 `json:"folio"`
}

// CatalogProductDTO producto del catálogo PDV (con nombres resueltos).
type CatalogProductDTO struct {
	ID          int64           `json:"id"`
	Descripcion string          `json:"descripcion"`
	Stock       int64           `json:"stock"`
	Precio      decimal.Decimal `json:"precio"`
	Categoria   string          `json:"nombre_categoria"`
	Proveedor   string          `json:"nombre_proveedor"`
}

// SaleReportLineDTO línea anidada del reporte de ventas.
type SaleReportLineDTO struct {
	Descripcion    string          `json:"descripcion"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// SaleReportDTO venta del reporte con detalle agregado.
type SaleReportDTO struct {
	ID         int64               `json:"id"`
	Folio      int64               `json:"folio"`
	FechaVenta time.Time           `json:"fecha_venta"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Impuesto   decimal.Decimal     `json:"impuesto"`
	Descuento  decimal.Decimal     `json:"descuento"`
	Total      decimal.Decimal     `json:"total"`
	EsFactura  bool                `json:"es_factura"`
	Cliente    string              `json:"cliente_nombre"`
	Vendedor   string              `json:"vendedor_nombre"`
	Detalles   []SaleReportLineDTO `json:"detalles"`
}

// SoldProductDTO fila del reporte de productos vendidos (margen = venta - costo).
type SoldProductDTO struct {
	FechaVenta     time.Time       `json:"fecha_venta"`
	Clave          int64           `json:"clave"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       int64           `json:"cantidad"`
	Venta          decimal.Decimal `json:"venta"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Costo          decimal.Decimal `json:"costo"`
}
