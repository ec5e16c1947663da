package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// ReportRepository implementa consultas de solo lectura sobre ventas.
type ReportRepository struct {
	db Querier
}

func NewReportRepository(db Querier) *ReportRepository {
	return &ReportRepository{db: db}
}

// SalesReport trae las cabeceras en una consulta y las líneas en otra, y las
// agrupa en memoria. Sin bloqueos: una venta que confirma durante la lectura
// aparece completa o no aparece.
func (r *ReportRepository) SalesReport(ctx context.Context, companyID int64, from, to *time.Time) ([]*repository.SaleReportRow, error) {
	query := `
		SELECT v.id, v.folio, v.fecha, v.subtotal, v.impuestos, v.descuento, v.total,
		       v.es_factura, COALESCE(c.nombre, 'Público General'), COALESCE(vd.nombre, 'Mostrador')
		FROM ventas v
		LEFT JOIN clientes c ON c.id = v.cliente_id
		LEFT JOIN vendedores vd ON vd.id = v.vendedor_id
		WHERE v.empresa_id = $1`
	args := []any{companyID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND v.fecha >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND v.fecha <= $%d", len(args))
	}
	query += " ORDER BY v.fecha DESC, v.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("consultando reporte de ventas: %w", err)
	}
	defer rows.Close()

	var (
		result []*repository.SaleReportRow
		byID   = make(map[int64]*repository.SaleReportRow)
		ids    []int64
	)
	for rows.Next() {
		var row repository.SaleReportRow
		if err := rows.Scan(
			&row.ID, &row.Folio, &row.SoldAt, &row.Subtotal, &row.Tax, &row.Discount,
			&row.Total, &row.IsInvoice, &row.ClientName, &row.SellerName,
		); err != nil {
			return nil, fmt.Errorf("leyendo venta del reporte: %w", err)
		}
		result = append(result, &row)
		byID[row.ID] = &row
		ids = append(ids, row.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return result, nil
	}

	lineRows, err := r.db.Query(ctx, `
		SELECT d.venta_id, p.descripcion, d.cantidad, d.precio_unitario, d.subtotal
		FROM detalle_venta d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.venta_id = ANY($1)
		ORDER BY d.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("consultando líneas del reporte: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			saleID int64
			line   repository.SaleReportLine
		)
		if err := lineRows.Scan(&saleID, &line.Description, &line.Quantity, &line.UnitPrice, &line.Subtotal); err != nil {
			return nil, fmt.Errorf("leyendo línea del reporte: %w", err)
		}
		if sale, ok := byID[saleID]; ok {
			sale.Lines = append(sale.Lines, line)
		}
	}
	return result, lineRows.Err()
}

// SoldProducts lista cada línea vendida con su ingreso y costo para análisis
// de margen, usando las instantáneas de precio y costo del detalle.
func (r *ReportRepository) SoldProducts(ctx context.Context, companyID int64, from, to *time.Time) ([]*repository.SoldProductRow, error) {
	query := `
		SELECT v.fecha, d.producto_id, p.descripcion, d.cantidad, d.subtotal,
		       d.precio_unitario, d.costo_unitario * d.cantidad
		FROM detalle_venta d
		JOIN ventas v ON v.id = d.venta_id
		JOIN productos p ON p.id = d.producto_id
		WHERE v.empresa_id = $1`
	args := []any{companyID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND v.fecha >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND v.fecha <= $%d", len(args))
	}
	query += " ORDER BY v.fecha DESC, d.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("consultando productos vendidos: %w", err)
	}
	defer rows.Close()

	var result []*repository.SoldProductRow
	for rows.Next() {
		var row repository.SoldProductRow
		if err := rows.Scan(
			&row.SoldAt, &row.ProductID, &row.Description, &row.Quantity,
			&row.Revenue, &row.UnitPrice, &row.Cost,
		); err != nil {
			return nil, fmt.Errorf("leyendo producto vendido: %w", err)
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}
