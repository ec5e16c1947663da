package dto

import "github.com/shopspring/decimal"

// ProductRequest cuerpo de creación/actualización de producto.
// Stock solo se interpreta en la creación (stock inicial); después el stock
// únicamente cambia vía ventas, entradas y ajustes.
type ProductRequest struct {
	ProveedorID int64           `json:"proveedor_id"`
	CategoriaID int64           `json:"categoria_id"`
	Descripcion string          `json:"descripcion"`
	Stock       int64           `json:"stock"`
	Costo       decimal.Decimal `json:"costo"`
	Precio      decimal.Decimal `json:"precio"`
}

// ProductResponse producto en listados y respuestas de creación.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Descripcion string          `json:"descripcion"`
	Stock       int64           `json:"stock"`
	Costo       decimal.Decimal `json:"costo"`
	Precio      decimal.Decimal `json:"precio"`
	CategoriaID int64           `json:"categoria_id"`
	ProveedorID int64           `json:"proveedor_id"`
	Categoria   string          `json:"categoria_nombre,omitempty"`
	Proveedor   string          `json:"proveedor_nombre,omitempty"`
}
