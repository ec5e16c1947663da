package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// RecordEntriesUseCase registra entradas manuales de inventario (recepciones de
// compra) de forma transaccional: por cada producto bloquea la fila, acredita
// el stock y escribe el movimiento ENTRADA; cualquier fallo revierte el lote
// completo.
type RecordEntriesUseCase struct {
	txRunner  TxRunner
	movements repository.MovementRepository // repos sobre pool, para lecturas
}

// NewRecordEntriesUseCase construye el caso de uso.
func NewRecordEntriesUseCase(txRunner TxRunner, movements repository.MovementRepository) *RecordEntriesUseCase {
	return &RecordEntriesUseCase{txRunner: txRunner, movements: movements}
}

// RecordEntries valida el lote y lo aplica en una sola transacción.
// Devuelve la cantidad de entradas registradas.
func (uc *RecordEntriesUseCase) RecordEntries(ctx context.Context, companyID, userID int64, in dto.RecordEntriesRequest) (int, error) {
	if len(in.Productos) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, item := range in.Productos {
		if item.ProductoID <= 0 || item.Cantidad <= 0 {
			return 0, domain.ErrInvalidInput
		}
	}

	reference := entity.ReferenceManualEntry
	if in.Referencia != nil && strings.TrimSpace(*in.Referencia) != "" {
		reference = strings.TrimSpace(*in.Referencia)
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		ledger := NewStockLedger(repos.Products)
		for _, item := range in.Productos {
			_, newStock, err := ledger.Credit(ctx, companyID, item.ProductoID, item.Cantidad)
			if err != nil {
				return err
			}
			mov := &entity.InventoryMovement{
				CompanyID:      companyID,
				ProductID:      item.ProductoID,
				Kind:           entity.MovementEntrada,
				Quantity:       item.Cantidad,
				ResultingStock: newStock,
				UserID:         userID,
				Reference:      reference,
				Reason:         in.Motivo,
				OccurredAt:     now,
			}
			if err := repos.Movements.Create(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(in.Productos), nil
}

// ListMovements devuelve el libro de movimientos de la empresa filtrado por
// tipo y rango de fechas. kind vacío o "TODOS" lista todos los tipos.
func (uc *RecordEntriesUseCase) ListMovements(ctx context.Context, companyID int64, kind string, from, to *time.Time) ([]dto.MovementDTO, error) {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	switch kind {
	case "", "TODOS":
		kind = ""
	case entity.MovementEntrada, entity.MovementSalida, entity.MovementAjuste:
	default:
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.movements.List(ctx, companyID, kind, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementDTO{
			ID:         r.ID,
			Fecha:      r.OccurredAt,
			Producto:   r.ProductName,
			ProductoID: r.ProductID,
			Tipo:       r.Kind,
			Cantidad:   r.Quantity,
			NuevoStock: r.ResultingStock,
			Usuario:    r.UserName,
			Referencia: r.Reference,
			Motivo:     r.Reason,
		})
	}
	return out, nil
}
