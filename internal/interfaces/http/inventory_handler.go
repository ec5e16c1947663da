package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/application/inventory"
)

// InventoryHandler maneja entradas manuales y el libro de movimientos (protegido).
type InventoryHandler struct {
	uc *inventory.RecordEntriesUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RecordEntriesUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RecordEntries godoc
// @Summary      Registrar entradas manuales de inventario
// @Description  Acredita stock producto por producto y registra los movimientos
//               ENTRADA en una sola transacción: o entran todos o no entra ninguno.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordEntriesRequest  true  "productos, referencia y motivo"
// @Success      201   {object}  dto.RecordEntriesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/inventario/entradas [post]
func (h *InventoryHandler) RecordEntries(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	p, _ := GetPrincipal(c)

	var in dto.RecordEntriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	count, err := h.uc.RecordEntries(c.Context(), companyID, p.UserID, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordEntriesResponse{Registrados: count})
}

// ListMovements godoc
// @Summary      Libro de movimientos de inventario
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        tipo   query  string  false  "ENTRADA, SALIDA, AJUSTE o TODOS"
// @Param        desde  query  string  false  "Fecha inicial (RFC 3339 o YYYY-MM-DD)"
// @Param        hasta  query  string  false  "Fecha final (RFC 3339 o YYYY-MM-DD)"
// @Success      200  {array}   dto.MovementDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/inventario/entradas [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
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

	movements, err := h.uc.ListMovements(c.Context(), companyID, c.Query("tipo"), from, to)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(movements)
}

// parseDateQuery acepta RFC 3339 o fecha simple YYYY-MM-DD. Para el límite
// superior una fecha simple se extiende al fin del día.
func parseDateQuery(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
