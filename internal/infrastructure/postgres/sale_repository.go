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

// SaleRepository implementa la persistencia de ventas, detalle y pagos.
// Las inserciones solo se invocan dentro de la transacción de venta.
type SaleRepository struct {
	db Querier
}

func NewSaleRepository(db Querier) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) CreateSale(ctx context.Context, sale *entity.Sale) (int64, error) {
	query := `
		INSERT INTO ventas
			(empresa_id, folio, subtotal, impuestos, descuento, total, es_factura,
			 cliente_id, vendedor_id, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		sale.CompanyID, sale.Folio, sale.Subtotal, sale.Tax, sale.Discount,
		sale.Total, sale.IsInvoice, sale.ClientID, sale.SellerID, sale.UserID,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insertando venta: %w", err)
	}
	return id, nil
}

func (r *SaleRepository) CreateDetail(ctx context.Context, detail *entity.SaleDetail) error {
	query := `
		INSERT INTO detalle_venta
			(venta_id, producto_id, cantidad, precio_unitario, costo_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		detail.SaleID, detail.ProductID, detail.Quantity,
		detail.UnitPrice, detail.UnitCost, detail.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insertando detalle de venta: %w", err)
	}
	return nil
}

func (r *SaleRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO pagos_venta (venta_id, metodo, monto) VALUES ($1, $2, $3)`,
		payment.SaleID, payment.Method, payment.Amount,
	)
	if err != nil {
		return fmt.Errorf("insertando pago: %w", err)
	}
	return nil
}

func (r *SaleRepository) GetByID(ctx context.Context, companyID, id int64) (*entity.Sale, error) {
	query := `
		SELECT id, empresa_id, folio, subtotal, impuestos, descuento, total,
		       es_factura, cliente_id, vendedor_id, usuario_id, fecha
		FROM ventas
		WHERE id = $1 AND empresa_id = $2`

	var s entity.Sale
	err := r.db.QueryRow(ctx, query, id, companyID).Scan(
		&s.ID, &s.CompanyID, &s.Folio, &s.Subtotal, &s.Tax, &s.Discount,
		&s.Total, &s.IsInvoice, &s.ClientID, &s.SellerID, &s.UserID, &s.SoldAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultando venta: %w", err)
	}
	return &s, nil
}

func (r *SaleRepository) GetDetails(ctx context.Context, saleID int64) ([]*repository.SaleDetailRow, error) {
	query := `
		SELECT d.producto_id, p.descripcion, d.cantidad, d.precio_unitario, d.costo_unitario, d.subtotal
		FROM detalle_venta d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.venta_id = $1
		ORDER BY d.id`

	rows, err := r.db.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("consultando detalle de venta: %w", err)
	}
	defer rows.Close()

	var result []*repository.SaleDetailRow
	for rows.Next() {
		var row repository.SaleDetailRow
		if err := rows.Scan(
			&row.ProductID, &row.Description, &row.Quantity,
			&row.UnitPrice, &row.UnitCost, &row.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("leyendo línea de venta: %w", err)
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}

func (r *SaleRepository) GetPayments(ctx context.Context, saleID int64) ([]*entity.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, venta_id, metodo, monto FROM pagos_venta WHERE venta_id = $1 ORDER BY id`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("consultando pagos: %w", err)
	}
	defer rows.Close()

	var result []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.SaleID, &p.Method, &p.Amount); err != nil {
			return nil, fmt.Errorf("leyendo pago: %w", err)
		}
		result = append(result, &p)
	}
	return result, rows.Err()
}
