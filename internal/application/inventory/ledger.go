package inventory

import (
	"context"

	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// StockLedger aplica mutaciones de stock sobre la fila bloqueada del producto.
// Se construye con los repositorios de la transacción en curso: el bloqueo
// (SELECT FOR UPDATE) se toma aquí y se mantiene hasta el commit o rollback.
// El ledger no escribe el movimiento; eso es responsabilidad del caller, en la
// misma transacción, usando el stock resultante como ResultingStock.
type StockLedger struct {
	products repository.ProductRepository
}

// NewStockLedger construye el ledger sobre los repos de la tx actual.
func NewStockLedger(products repository.ProductRepository) *StockLedger {
	return &StockLedger{products: products}
}

// Debit bloquea la fila del producto (acotada a la empresa: un id de otro
// tenant se comporta como inexistente), valida el stock y resta quantity.
// Devuelve el producto bloqueado y el stock resultante.
func (l *StockLedger) Debit(ctx context.Context, companyID, productID, quantity int64) (*entity.Product, int64, error) {
	if quantity <= 0 {
		return nil, 0, domain.ErrInvalidInput
	}
	product, err := l.products.GetForUpdate(ctx, companyID, productID)
	if err != nil {
		return nil, 0, err
	}
	if product == nil {
		return nil, 0, domain.ErrProductNotFound
	}
	if product.Stock < quantity {
		return nil, 0, domain.ErrInsufficientStock
	}
	newStock, err := l.products.AdjustStock(ctx, companyID, productID, -quantity)
	if err != nil {
		return nil, 0, err
	}
	return product, newStock, nil
}

// Credit bloquea la fila del producto y suma quantity. Simétrico a Debit;
// quantity debe ser positiva.
func (l *StockLedger) Credit(ctx context.Context, companyID, productID, quantity int64) (*entity.Product, int64, error) {
	if quantity <= 0 {
		return nil, 0, domain.ErrInvalidInput
	}
	product, err := l.products.GetForUpdate(ctx, companyID, productID)
	if err != nil {
		return nil, 0, err
	}
	if product == nil {
		return nil, 0, domain.ErrProductNotFound
	}
	newStock, err := l.products.AdjustStock(ctx, companyID, productID, quantity)
	if err != nil {
		return nil, 0, err
	}
	return product, newStock, nil
}
