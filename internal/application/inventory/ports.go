package inventory

import (
	"context"

	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Folios    repository.FolioRepository
	Products  repository.ProductRepository
	Movements repository.MovementRepository
	Sales     repository.SaleRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Si fn retorna error la transacción completa se
// revierte; garantiza atomicidad para ventas, entradas y creación de productos.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
