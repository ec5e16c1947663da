package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/application/inventory"
	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// Config parámetros del protocolo de venta. El despliegue actual opera con
// TaxRate 0 y DiscountRule "none"; la transacción los consume como valores
// opacos.
type Config struct {
	TaxRate      decimal.Decimal
	DiscountRule string
}

// Cliente y vendedor por defecto para ventas de mostrador sin registro.
const (
	defaultClientID = 1
	defaultSellerID = 1
)

const saleExitReason = "Salida por venta registrada en sistema"

// RecordSaleUseCase procesa una venta completa como unidad atómica: folio,
// bloqueo y débito de stock por línea, cabecera/detalle/pagos y movimientos
// SALIDA comparten una transacción; cualquier fallo revierte todo y el folio
// nunca se expone al caller sin commit.
type RecordSaleUseCase struct {
	txRunner inventory.TxRunner
	folios   repository.FolioRepository // sobre pool, solo para Peek
	cfg      Config
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner inventory.TxRunner, folios repository.FolioRepository, cfg Config) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, folios: folios, cfg: cfg}
}

// lineSnapshot captura precio/costo/subtotal resueltos bajo bloqueo de fila.
type lineSnapshot struct {
	productID int64
	quantity  int64
	unitPrice decimal.Decimal
	unitCost  decimal.Decimal
	subtotal  decimal.Decimal
}

// RecordSale ejecuta el protocolo de venta.
//
// Validación barata primero (sin abrir bloqueos); después, en una transacción:
//  1. folio exclusivo del tenant (FOR UPDATE sobre control_folios);
//  2. por cada línea, en el orden recibido: bloquear la fila del producto,
//     resolver precio (override del caller si es válido, si no el vigente),
//     verificar stock y capturar el costo para reportes de margen;
//  3. totales con impuesto/descuento configurados;
//  4. suficiencia de pagos y cálculo del cambio;
//  5. insertar venta, detalle y pagos;
//  6. debitar stock y escribir un movimiento SALIDA por línea con el stock
//     resultante y referencia VENTA-<id>;
//  7. commit. Ningún paso reintenta: ante error se revierte todo.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, companyID, userID int64, in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	if len(in.Detalles) == 0 || len(in.Pagos) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Detalles {
		if item.ProductoID <= 0 || item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.PrecioUnitario != nil && item.PrecioUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	var paid decimal.Decimal
	for _, pago := range in.Pagos {
		if !pago.Monto.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		paid = paid.Add(pago.Monto)
	}

	clientID := int64(defaultClientID)
	if in.ClienteID != nil {
		clientID = *in.ClienteID
	}
	sellerID := int64(defaultSellerID)
	if in.VendedorID != nil {
		sellerID = *in.VendedorID
	}

	now := time.Now()
	var resp *dto.RecordSaleResponse

	err := uc.txRunner.Run(ctx, func(repos inventory.TxRepos) error {
		folio, err := repos.Folios.Next(ctx, companyID)
		if err != nil {
			return err
		}

		// Bloquear y leer cada producto en el orden del caller; los bloqueos se
		// mantienen hasta el commit, así dos ventas concurrentes sobre el mismo
		// producto se serializan en la cola de la fila.
		var subtotal decimal.Decimal
		lines := make([]lineSnapshot, 0, len(in.Detalles))
		for _, item := range in.Detalles {
			product, err := repos.Products.GetForUpdate(ctx, companyID, item.ProductoID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			unitPrice := product.Price
			if item.PrecioUnitario != nil && item.PrecioUnitario.GreaterThan(decimal.Zero) {
				unitPrice = *item.PrecioUnitario
			}
			if product.Stock < item.Cantidad {
				return domain.ErrInsufficientStock
			}
			lineSubtotal := unitPrice.Mul(decimal.NewFromInt(item.Cantidad))
			subtotal = subtotal.Add(lineSubtotal)
			lines = append(lines, lineSnapshot{
				productID: item.ProductoID,
				quantity:  item.Cantidad,
				unitPrice: unitPrice,
				unitCost:  product.Cost,
				subtotal:  lineSubtotal,
			})
		}

		tax := subtotal.Mul(uc.cfg.TaxRate)
		discount := decimal.Zero // DiscountRule "none"
		total := subtotal.Add(tax).Sub(discount)

		if paid.LessThan(total) {
			return domain.ErrInsufficientPayment
		}
		change := paid.Sub(total)

		sale := &entity.Sale{
			CompanyID: companyID,
			Folio:     folio,
			Subtotal:  subtotal,
			Tax:       tax,
			Discount:  discount,
			Total:     total,
			IsInvoice: in.EsFactura,
			ClientID:  clientID,
			SellerID:  sellerID,
			UserID:    userID,
			SoldAt:    now,
		}
		saleID, err := repos.Sales.CreateSale(ctx, sale)
		if err != nil {
			return err
		}
		for _, line := range lines {
			detail := &entity.SaleDetail{
				SaleID:    saleID,
				ProductID: line.productID,
				Quantity:  line.quantity,
				UnitPrice: line.unitPrice,
				UnitCost:  line.unitCost,
				Subtotal:  line.subtotal,
			}
			if err := repos.Sales.CreateDetail(ctx, detail); err != nil {
				return err
			}
		}
		for _, pago := range in.Pagos {
			payment := &entity.Payment{
				SaleID: saleID,
				Method: pago.Metodo,
				Amount: pago.Monto,
			}
			if err := repos.Sales.CreatePayment(ctx, payment); err != nil {
				return err
			}
		}

		// Débito y movimiento por línea: exactamente un movimiento SALIDA por
		// producto tocado, en la misma unidad atómica que la mutación de stock.
		ledger := inventory.NewStockLedger(repos.Products)
		reason := saleExitReason
		for _, line := range lines {
			_, newStock, err := ledger.Debit(ctx, companyID, line.productID, line.quantity)
			if err != nil {
				return err
			}
			mov := &entity.InventoryMovement{
				CompanyID:      companyID,
				ProductID:      line.productID,
				Kind:           entity.MovementSalida,
				Quantity:       -line.quantity,
				ResultingStock: newStock,
				UserID:         userID,
				Reference:      fmt.Sprintf("VENTA-%d", saleID),
				Reason:         &reason,
				OccurredAt:     now,
			}
			if err := repos.Movements.Create(ctx, mov); err != nil {
				return err
			}
		}

		resp = &dto.RecordSaleResponse{VentaID: saleID, Folio: folio, Cambio: change}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// PeekFolio devuelve el próximo folio sin bloquear (vista previa para el PDV;
// puede quedar obsoleto ante una venta concurrente, inconsistencia aceptada).
func (uc *RecordSaleUseCase) PeekFolio(ctx context.Context, companyID int64) (int64, error) {
	return uc.folios.Peek(ctx, companyID)
}
