package sales

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// TicketData datos para la representación en PDF de una venta confirmada.
// Change se recalcula desde los pagos (no se persiste).
type TicketData struct {
	Company  *entity.Company
	Sale     *entity.Sale
	Details  []*repository.SaleDetailRow
	Payments []*entity.Payment
	Change   decimal.Decimal
}

// TicketGenerator genera el ticket PDF de una venta.
type TicketGenerator interface {
	GenerateTicket(ctx context.Context, data TicketData) ([]byte, error)
}
