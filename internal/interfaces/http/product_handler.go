package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/application/usecase"
)

// ProductHandler maneja el CRUD de productos y el catálogo PDV (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Description  Un super_admin ve los productos de todas las empresas; cualquier
//               otro rol solo los de la suya.
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	products, err := h.uc.List(c.Context(), scope)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(products)
}

// Catalog godoc
// @Summary      Catálogo para el punto de venta
// @Description  Vista cacheada con búsqueda insensible a acentos (?q=). El stock
//               mostrado es informativo; la venta siempre relee bajo bloqueo.
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Texto de búsqueda"
// @Success      200  {array}   dto.CatalogProductDTO
// @Router       /api/admin/ventas/productos [get]
func (h *ProductHandler) Catalog(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	products, err := h.uc.Catalog(c.Context(), companyID, c.Query("q"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(products)
}

// Create godoc
// @Summary      Crear producto
// @Description  Si el stock inicial es mayor a cero, registra el movimiento
//               ENTRADA con referencia STOCK-INICIAL en la misma transacción.
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	p, _ := GetPrincipal(c)

	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Create(c.Context(), companyID, p.UserID, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  No modifica el stock: el stock solo cambia vía ventas, entradas y ajustes.
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "datos del producto"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	productID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), companyID, productID, in); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto actualizado"})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	companyID, err := scope.RequireTenant()
	if err != nil {
		return writeDomainError(c, err)
	}
	productID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	if err := h.uc.Delete(c.Context(), companyID, productID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}
