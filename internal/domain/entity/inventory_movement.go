package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementEntrada = "ENTRADA" // entrada de stock (compra, stock inicial)
	MovementSalida  = "SALIDA"  // salida por venta
	MovementAjuste  = "AJUSTE"  // ajuste manual
)

// Referencias fijas usadas por el sistema.
const (
	ReferenceInitialStock = "STOCK-INICIAL"
	ReferenceManualEntry  = "COMPRA-MANUAL"
)

// InventoryMovement es una entrada del libro de movimientos: inmutable y solo
// de inserción (auditoría). Quantity es con signo (positivo ENTRADA, negativo
// SALIDA); ResultingStock es el stock del producto inmediatamente después de
// aplicar este movimiento, de modo que reproducir la historia en orden de
// fecha suma exactamente el stock actual.
type InventoryMovement struct {
	ID             int64
	CompanyID      int64
	ProductID      int64
	Kind           string
	Quantity       int64
	ResultingStock int64
	UserID         int64
	Reference      string
	Reason         *string
	OccurredAt     time.Time
}
