package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-saas-api/internal/application/auth"
	"github.com/jhoicas/pos-saas-api/internal/application/inventory"
	"github.com/jhoicas/pos-saas-api/internal/application/sales"
	"github.com/jhoicas/pos-saas-api/internal/application/usecase"
	infracache "github.com/jhoicas/pos-saas-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/pos-saas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-saas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-saas-api/internal/interfaces/http"
	"github.com/jhoicas/pos-saas-api/pkg/config"
	"github.com/jhoicas/pos-saas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	folioRepo := postgres.NewFolioRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache de catálogo: Redis si está configurado, si no noop (siempre miss).
	var catalogCache usecase.CatalogCache = infracache.NewNoopCache()
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis no disponible, catálogo sin cache")
		} else {
			catalogCache = infracache.NewRedisCache(rdb)
		}
	}

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(
		txRunner, productRepo, catalogRepo, catalogCache,
		time.Duration(cfg.Redis.TTLSeconds)*time.Second, log,
	)
	reportUC := usecase.NewReportUseCase(reportRepo)
	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, folioRepo, sales.Config{
		TaxRate:      cfg.Sales.TaxRate,
		DiscountRule: cfg.Sales.DiscountRule,
	})
	ticketUC := sales.NewTicketUseCase(saleRepo, companyRepo, infrapdf.NewMarotoTicketGenerator())
	recordEntriesUC := inventory.NewRecordEntriesUseCase(txRunner, movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS SaaS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		ReportUC:      reportUC,
		RecordSale:    recordSaleUC,
		Ticket:        ticketUC,
		RecordEntries: recordEntriesUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
