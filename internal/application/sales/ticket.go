package sales

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// TicketUseCase genera la representación PDF de una venta confirmada.
// Lectura pura sobre filas ya commiteadas; sin bloqueos.
type TicketUseCase struct {
	sales     repository.SaleRepository
	companies repository.CompanyRepository
	generator TicketGenerator
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(sales repository.SaleRepository, companies repository.CompanyRepository, generator TicketGenerator) *TicketUseCase {
	return &TicketUseCase{sales: sales, companies: companies, generator: generator}
}

// GenerateTicket arma los datos de la venta (acotada al tenant) y los entrega
// al generador PDF. El cambio se recalcula: pagos - total.
func (uc *TicketUseCase) GenerateTicket(ctx context.Context, companyID, saleID int64) ([]byte, error) {
	sale, err := uc.sales.GetByID(ctx, companyID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.sales.GetDetails(ctx, saleID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.sales.GetPayments(ctx, saleID)
	if err != nil {
		return nil, err
	}

	var paid decimal.Decimal
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	return uc.generator.GenerateTicket(ctx, TicketData{
		Company:  company,
		Sale:     sale,
		Details:  details,
		Payments: payments,
		Change:   paid.Sub(sale.Total),
	})
}
