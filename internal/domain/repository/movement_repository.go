package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

// MovementLogRow es la vista del movimiento para el listado (producto y usuario resueltos).
type MovementLogRow struct {
	ID             int64
	ProductID      int64
	ProductName    string
	Kind           string
	Quantity       int64
	ResultingStock int64
	UserName       *string
	Reference      string
	Reason         *string
	OccurredAt     time.Time
}

// MovementRepository define el puerto del libro de movimientos de inventario.
// Solo inserción y lectura: los movimientos nunca se editan ni se borran.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// List devuelve los movimientos de la empresa, filtrados por tipo
	// (ENTRADA, SALIDA, AJUSTE; vacío = todos) y rango de fechas, ordenados
	// por fecha descendente.
	List(ctx context.Context, companyID int64, kind string, from, to *time.Time) ([]*MovementLogRow, error)
}
