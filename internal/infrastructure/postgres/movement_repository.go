package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// MovementRepository implementa el libro de movimientos de inventario.
// Solo INSERT y SELECT: sin UPDATE ni DELETE sobre movimientos_inventario.
type MovementRepository struct {
	db Querier
}

func NewMovementRepository(db Querier) *MovementRepository {
	return &MovementRepository{db: db}
}

func (r *MovementRepository) Create(ctx context.Context, movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO movimientos_inventario
			(empresa_id, producto_id, tipo, cantidad, nuevo_stock, usuario_id, referencia, motivo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		movement.CompanyID, movement.ProductID, movement.Kind,
		movement.Quantity, movement.ResultingStock, movement.UserID,
		movement.Reference, movement.Reason,
	)
	if err != nil {
		return fmt.Errorf("insertando movimiento de inventario: %w", err)
	}
	return nil
}

func (r *MovementRepository) List(ctx context.Context, companyID int64, kind string, from, to *time.Time) ([]*repository.MovementLogRow, error) {
	query := `
		SELECT m.id, m.producto_id, p.descripcion, m.tipo, m.cantidad, m.nuevo_stock,
		       u.nombre, m.referencia, m.motivo, m.fecha
		FROM movimientos_inventario m
		JOIN productos p ON p.id = m.producto_id
		LEFT JOIN usuarios u ON u.id = m.usuario_id
		WHERE m.empresa_id = $1`
	args := []any{companyID}

	if kind != "" {
		args = append(args, kind)
		query += fmt.Sprintf(" AND m.tipo = $%d", len(args))
	}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND m.fecha >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND m.fecha <= $%d", len(args))
	}
	query += " ORDER BY m.fecha DESC, m.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listando movimientos: %w", err)
	}
	defer rows.Close()

	var result []*repository.MovementLogRow
	for rows.Next() {
		var row repository.MovementLogRow
		if err := rows.Scan(
			&row.ID, &row.ProductID, &row.ProductName, &row.Kind, &row.Quantity,
			&row.ResultingStock, &row.UserName, &row.Reference, &row.Reason, &row.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("leyendo fila de movimiento: %w", err)
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}
