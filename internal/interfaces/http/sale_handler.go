package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/application/sales"
)

// SaleHandler maneja el registro de ventas y sus vistas (protegido).
type SaleHandler struct {
	record *sales.RecordSaleUseCase
	ticket *sales.TicketUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(record *sales.RecordSaleUseCase, ticket *sales.TicketUseCase) *SaleHandler {
	return &SaleHandler{record: record, ticket: ticket}
}

// RecordSale godoc
// @Summary      Registrar una venta
// @Description  Asigna folio, descuenta stock línea por línea bajo bloqueo de fila,
//               registra los movimientos de salida y concilia los pagos. Todo o nada:
//               cualquier falla revierte la transacción completa.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "detalles y pagos de la venta"
// @Success      201   {object}  dto.RecordSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/ventas [post]
func (h *SaleHandler) RecordSale(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	p, _ := GetPrincipal(c)

	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.record.RecordSale(c.Context(), companyID, p.UserID, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// PeekFolio godoc
// @Summary      Próximo folio de venta (vista previa)
// @Description  No bloquea ni incrementa el contador; el valor puede quedar
//               obsoleto si una venta concurrente confirma antes.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FolioPreviewResponse
// @Router       /api/admin/ventas/folio_actual [get]
func (h *SaleHandler) PeekFolio(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	folio, err := h.record.PeekFolio(c.Context(), companyID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.FolioPreviewResponse{Folio: folio})
}

// Ticket godoc
// @Summary      Ticket PDF de una venta
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/ventas/{id}/ticket [get]
func (h *SaleHandler) Ticket(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	saleID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de venta inválido"})
	}
	pdfBytes, err := h.ticket.GenerateTicket(c.Context(), companyID, saleID)
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="ticket-%d.pdf"`, saleID))
	return c.Send(pdfBytes)
}
