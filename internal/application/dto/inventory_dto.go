package dto

import "time"

// EntryItemRequest producto de una entrada manual de inventario.
type EntryItemRequest struct {
	ProductoID int64 `json:"producto_id"`
	Cantidad   int64 `json:"cantidad"`
}

// RecordEntriesRequest cuerpo de POST /api/admin/inventario/entradas.
type RecordEntriesRequest struct {
	Productos  []EntryItemRequest `json:"productos"`
	Referencia *string            `json:"referencia,omitempty"`
	Motivo     *string            `json:"motivo,omitempty"`
}

// RecordEntriesResponse resultado de una entrada confirmada.
type RecordEntriesResponse struct {
	Registrados int `json:"registrados"`
}

// MovementDTO movimiento del libro de inventario para listados.
type MovementDTO struct {
	ID         int64     `json:"id"`
	Fecha      time.Time `json:"fecha"`
	Producto   string    `json:"producto"`
	ProductoID int64     `json:"producto_id"`
	Tipo       string    `json:"tipo"`
	Cantidad   int64     `json:"cantidad"`
	NuevoStock int64     `json:"nuevo_stock"`
	Usuario    *string   `json:"usuario"`
	Referencia string    `json:"referencia"`
	Motivo     *string   `json:"motivo"`
}
