package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// FolioRepository implementa el consecutivo de folios sobre control_folios.
// Una fila por empresa, creada perezosamente en la primera venta.
type FolioRepository struct {
	db Querier
}

func NewFolioRepository(db Querier) *FolioRepository {
	return &FolioRepository{db: db}
}

// Next bloquea la fila del contador con FOR UPDATE, la incrementa y devuelve
// el folio asignado. Ventas concurrentes de la misma empresa quedan
// serializadas en este bloqueo; si la transacción aborta, el incremento se
// revierte y el folio no se quema.
func (r *FolioRepository) Next(ctx context.Context, companyID int64) (int64, error) {
	var last int64
	err := r.db.QueryRow(ctx,
		`SELECT ultimo_folio FROM control_folios WHERE empresa_id = $1 FOR UPDATE`,
		companyID,
	).Scan(&last)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// Primera venta de la empresa: crear el contador en 1.
		_, err = r.db.Exec(ctx,
			`INSERT INTO control_folios (empresa_id, ultimo_folio) VALUES ($1, 1)`,
			companyID)
		if err != nil {
			return 0, fmt.Errorf("creando contador de folios: %w", err)
		}
		return 1, nil
	case err != nil:
		return 0, fmt.Errorf("bloqueando contador de folios: %w", err)
	}

	next := last + 1
	_, err = r.db.Exec(ctx,
		`UPDATE control_folios SET ultimo_folio = $1 WHERE empresa_id = $2`,
		next, companyID)
	if err != nil {
		return 0, fmt.Errorf("incrementando folio: %w", err)
	}
	return next, nil
}

// Peek devuelve el próximo folio sin bloquear ni mutar.
func (r *FolioRepository) Peek(ctx context.Context, companyID int64) (int64, error) {
	var last int64
	err := r.db.QueryRow(ctx,
		`SELECT ultimo_folio FROM control_folios WHERE empresa_id = $1`,
		companyID,
	).Scan(&last)

	if errors.Is(err, pgx.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("consultando contador de folios: %w", err)
	}
	return last + 1, nil
}
