package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-saas-api/internal/application/auth"
	"github.com/jhoicas/pos-saas-api/internal/application/inventory"
	"github.com/jhoicas/pos-saas-api/internal/application/sales"
	"github.com/jhoicas/pos-saas-api/internal/application/usecase"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	ReportUC      *usecase.ReportUseCase
	RecordSale    *sales.RecordSaleUseCase
	Ticket        *sales.TicketUseCase
	RecordEntries *inventory.RecordEntriesUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	api.Get("/check-tenant/:tenantId", authHandler.CheckTenant)

	// Rutas protegidas: Bearer Token + resolución de tenant
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), TenantMiddleware())

	// Productos
	productHandler := NewProductHandler(deps.ProductUC)
	products := admin.Group("/productos")
	products.Get("/", productHandler.List)
	products.Post("/", RequireRole(entity.RoleAdministrador), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdministrador), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdministrador), productHandler.Delete)

	// Ventas
	saleHandler := NewSaleHandler(deps.RecordSale, deps.Ticket)
	reportHandler := NewReportHandler(deps.ReportUC)
	ventas := admin.Group("/ventas")
	ventas.Post("/", saleHandler.RecordSale)
	ventas.Get("/folio_actual", saleHandler.PeekFolio)
	ventas.Get("/productos", productHandler.Catalog)
	ventas.Get("/reportes", reportHandler.SalesReport)
	ventas.Get("/productos-vendidos", reportHandler.SoldProducts)
	ventas.Get("/:id/ticket", saleHandler.Ticket)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.RecordEntries)
	inventario := admin.Group("/inventario")
	inventario.Post("/entradas", RequireRole(entity.RoleAdministrador), inventoryHandler.RecordEntries)
	inventario.Get("/entradas", inventoryHandler.ListMovements)
}
