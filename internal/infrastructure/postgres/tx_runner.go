package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-saas-api/internal/application/inventory"
)

// TxRunner ejecuta una función de negocio dentro de una transacción de
// postgres, entregándole repositorios ligados a esa transacción. Si la
// función retorna error se hace rollback completo; si no, commit.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciando transacción: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback tras commit es no-op

	repos := inventory.TxRepos{
		Folios:    NewFolioRepository(tx),
		Products:  NewProductRepository(tx),
		Movements: NewMovementRepository(tx),
		Sales:     NewSaleRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmando transacción: %w", err)
	}
	return nil
}
