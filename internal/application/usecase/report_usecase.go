package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// ReportUseCase consultas de solo lectura sobre el historial de ventas.
type ReportUseCase struct {
	reports repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

// SalesReport devuelve las ventas de la empresa con su detalle anidado,
// ordenadas por fecha descendente.
func (uc *ReportUseCase) SalesReport(ctx context.Context, companyID int64, from, to *time.Time) ([]dto.SaleReportDTO, error) {
	rows, err := uc.reports.SalesReport(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleReportDTO, 0, len(rows))
	for _, r := range rows {
		lines := make([]dto.SaleReportLineDTO, 0, len(r.Lines))
		for _, l := range r.Lines {
			lines = append(lines, dto.SaleReportLineDTO{
				Descripcion:    l.Description,
				Cantidad:       l.Quantity,
				PrecioUnitario: l.UnitPrice,
				Subtotal:       l.Subtotal,
			})
		}
		out = append(out, dto.SaleReportDTO{
			ID:         r.ID,
			Folio:      r.Folio,
			FechaVenta: r.SoldAt,
			Subtotal:   r.Subtotal,
			Impuesto:   r.Tax,
			Descuento:  r.Discount,
			Total:      r.Total,
			EsFactura:  r.IsInvoice,
			Cliente:    r.ClientName,
			Vendedor:   r.SellerName,
			Detalles:   lines,
		})
	}
	return out, nil
}

// SoldProducts devuelve las líneas vendidas con su costo para análisis de margen.
func (uc *ReportUseCase) SoldProducts(ctx context.Context, companyID int64, from, to *time.Time) ([]dto.SoldProductDTO, error) {
	rows, err := uc.reports.SoldProducts(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SoldProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SoldProductDTO{
			FechaVenta:     r.SoldAt,
			Clave:          r.ProductID,
			Descripcion:    r.Description,
			Cantidad:       r.Quantity,
			Venta:          r.Revenue,
			PrecioUnitario: r.UnitPrice,
			Costo:          r.Cost,
		})
	}
	return out, nil
}
