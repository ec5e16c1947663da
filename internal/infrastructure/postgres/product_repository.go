package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository sobre postgres.
// Toda consulta filtra por empresa_id: un id ajeno al tenant no existe.
type ProductRepository struct {
	db Querier
}

func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO productos (empresa_id, categoria_id, proveedor_id, descripcion, stock, costo, precio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		product.CompanyID, product.CategoryID, product.ProviderID,
		product.Description, product.Stock, product.Cost, product.Price,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insertando producto: %w", err)
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, companyID, id int64) (*entity.Product, error) {
	return r.get(ctx, companyID, id, false)
}

// GetForUpdate bloquea la fila del producto hasta el fin de la transacción.
func (r *ProductRepository) GetForUpdate(ctx context.Context, companyID, id int64) (*entity.Product, error) {
	return r.get(ctx, companyID, id, true)
}

func (r *ProductRepository) get(ctx context.Context, companyID, id int64, forUpdate bool) (*entity.Product, error) {
	query := `
		SELECT id, empresa_id, categoria_id, proveedor_id, descripcion, stock, costo, precio, created_at
		FROM productos
		WHERE id = $1 AND empresa_id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var p entity.Product
	err := r.db.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.CategoryID, &p.ProviderID,
		&p.Description, &p.Stock, &p.Cost, &p.Price, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultando producto: %w", err)
	}
	return &p, nil
}

// AdjustStock aplica el delta sobre la fila (ya bloqueada por GetForUpdate
// cuando se llama dentro de una venta) y devuelve el stock resultante.
func (r *ProductRepository) AdjustStock(ctx context.Context, companyID, id, delta int64) (int64, error) {
	query := `
		UPDATE productos
		SET stock = stock + $1
		WHERE id = $2 AND empresa_id = $3
		RETURNING stock`

	var stock int64
	err := r.db.QueryRow(ctx, query, delta, id, companyID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrProductNotFound
		}
		return 0, fmt.Errorf("ajustando stock: %w", err)
	}
	return stock, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE productos
		SET categoria_id = $1, proveedor_id = $2, descripcion = $3, costo = $4, precio = $5
		WHERE id = $6 AND empresa_id = $7`

	tag, err := r.db.Exec(ctx, query,
		product.CategoryID, product.ProviderID, product.Description,
		product.Cost, product.Price, product.ID, product.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("actualizando producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM productos WHERE id = $1 AND empresa_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("eliminando producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context, companyID *int64) ([]*repository.CatalogProductRow, error) {
	query := `
		SELECT p.id, p.empresa_id, p.descripcion, p.stock, p.costo, p.precio,
		       p.categoria_id, p.proveedor_id, c.nombre, pr.nombre
		FROM productos p
		JOIN categorias c ON c.id = p.categoria_id
		JOIN proveedores pr ON pr.id = p.proveedor_id`

	var (
		rows pgx.Rows
		err  error
	)
	if companyID != nil {
		rows, err = r.db.Query(ctx, query+" WHERE p.empresa_id = $1 ORDER BY p.descripcion", *companyID)
	} else {
		rows, err = r.db.Query(ctx, query+" ORDER BY p.empresa_id, p.descripcion")
	}
	if err != nil {
		return nil, fmt.Errorf("listando productos: %w", err)
	}
	defer rows.Close()

	var result []*repository.CatalogProductRow
	for rows.Next() {
		var row repository.CatalogProductRow
		if err := rows.Scan(
			&row.ID, &row.CompanyID, &row.Description, &row.Stock, &row.Cost, &row.Price,
			&row.CategoryID, &row.ProviderID, &row.CategoryName, &row.ProviderName,
		); err != nil {
			return nil, fmt.Errorf("leyendo fila de producto: %w", err)
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}
