package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/application/usecase"
)

// ReportHandler maneja los reportes de ventas (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesReport godoc
// @Summary      Reporte de ventas con detalle
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial (RFC 3339 o YYYY-MM-DD)"
// @Param        hasta  query  string  false  "Fecha final (RFC 3339 o YYYY-MM-DD)"
// @Success      200  {array}   dto.SaleReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/ventas/reportes [get]
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	from, err := parseDateQuery(c.Query("desde"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'desde' inválida"})
	}
	to, err := parseDateQuery(c.Query("hasta"), true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'hasta' inválida"})
	}

	report, err := h.uc.SalesReport(c.Context(), companyID, from, to)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(report)
}

// SoldProducts godoc
// @Summary      Reporte de productos vendidos (análisis de margen)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial (RFC 3339 o YYYY-MM-DD)"
// @Param        hasta  query  string  false  "Fecha final (RFC 3339 o YYYY-MM-DD)"
// @Success      200  {array}   dto.SoldProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/ventas/productos-vendidos [get]
func (h *ReportHandler) SoldProducts(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	from, err := parseDateQuery(c.Query("desde"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'desde' inválida"})
	}
	to, err := parseDateQuery(c.Query("hasta"), true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'hasta' inválida"})
	}

	report, err := h.uc.SoldProducts(c.Context(), companyID, from, to)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(report)
}
