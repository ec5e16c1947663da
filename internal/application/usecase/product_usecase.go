package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/application/inventory"
	"github.com/jhoicas/pos-saas-api/internal/application/tenant"
	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
	"github.com/jhoicas/pos-saas-api/pkg/logger"
	"github.com/jhoicas/pos-saas-api/pkg/searchtext"
	"github.com/shopspring/decimal"
)

const initialStockReason = "Stock inicial al crear el producto"

// ProductUseCase mantiene productos y expone el catálogo PDV.
// La creación con stock inicial positivo emite su movimiento ENTRADA
// (STOCK-INICIAL) en la misma transacción que el insert del producto.
type ProductUseCase struct {
	txRunner inventory.TxRunner
	products repository.ProductRepository // sobre pool, para lecturas
	catalogs repository.CatalogRepository
	cache    CatalogCache
	cacheTTL time.Duration
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner inventory.TxRunner,
	products repository.ProductRepository,
	catalogs repository.CatalogRepository,
	cache CatalogCache,
	cacheTTL time.Duration,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner: txRunner,
		products: products,
		catalogs: catalogs,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// List devuelve los productos visibles para el alcance: el super_admin ve
// todos los tenants, un usuario de empresa solo los suyos.
func (uc *ProductUseCase) List(ctx context.Context, scope tenant.Scope) ([]dto.ProductResponse, error) {
	rows, err := uc.products.List(ctx, scope.TenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductResponse{
			ID:          r.ID,
			Descripcion: r.Description,
			Stock:       r.Stock,
			Costo:       r.Cost,
			Precio:      r.Price,
			CategoriaID: r.CategoryID,
			ProveedorID: r.ProviderID,
			Categoria:   r.CategoryName,
			Proveedor:   r.ProviderName,
		})
	}
	return out, nil
}

// Catalog devuelve el catálogo PDV de la empresa, con cache Redis de TTL corto
// y filtro de búsqueda insensible a tildes sobre la descripción.
func (uc *ProductUseCase) Catalog(ctx context.Context, companyID int64, query string) ([]dto.CatalogProductDTO, error) {
	products, hit, err := uc.cache.Get(ctx, companyID)
	if err != nil {
		// El cache nunca es motivo para fallar una lectura del catálogo.
		uc.log.Warn().Err(err).Int64("empresa_id", companyID).Msg("cache de catálogo no disponible")
		hit = false
	}
	if !hit {
		rows, err := uc.products.List(ctx, &companyID)
		if err != nil {
			return nil, err
		}
		products = make([]dto.CatalogProductDTO, 0, len(rows))
		for _, r := range rows {
			products = append(products, dto.CatalogProductDTO{
				ID:          r.ID,
				Descripcion: r.Description,
				Stock:       r.Stock,
				Precio:      r.Price,
				Categoria:   r.CategoryName,
				Proveedor:   r.ProviderName,
			})
		}
		if err := uc.cache.Set(ctx, companyID, products, uc.cacheTTL); err != nil {
			uc.log.Warn().Err(err).Int64("empresa_id", companyID).Msg("no se pudo poblar el cache de catálogo")
		}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return products, nil
	}
	filtered := make([]dto.CatalogProductDTO, 0, len(products))
	for _, p := range products {
		if searchtext.Matches(p.Descripcion, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Create inserta el producto y, si el stock inicial es positivo, el movimiento
// ENTRADA STOCK-INICIAL, ambos en una sola transacción.
func (uc *ProductUseCase) Create(ctx context.Context, companyID, userID int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductRequest(in); err != nil {
		return nil, err
	}
	categoryOK, providerOK, err := uc.catalogs.ValidateProductRefs(ctx, companyID, in.CategoriaID, in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if !categoryOK || !providerOK {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		CompanyID:   companyID,
		CategoryID:  in.CategoriaID,
		ProviderID:  in.ProveedorID,
		Description: in.Descripcion,
		Stock:       in.Stock,
		Cost:        in.Costo,
		Price:       in.Precio,
		CreatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(repos inventory.TxRepos) error {
		id, err := repos.Products.Create(ctx, product)
		if err != nil {
			return err
		}
		product.ID = id
		if in.Stock > 0 {
			reason := initialStockReason
			mov := &entity.InventoryMovement{
				CompanyID:      companyID,
				ProductID:      id,
				Kind:           entity.MovementEntrada,
				Quantity:       in.Stock,
				ResultingStock: in.Stock,
				UserID:         userID,
				Reference:      entity.ReferenceInitialStock,
				Reason:         &reason,
				OccurredAt:     now,
			}
			if err := repos.Movements.Create(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateCatalog(ctx, companyID)

	return &dto.ProductResponse{
		ID:          product.ID,
		Descripcion: product.Description,
		Stock:       product.Stock,
		Costo:       product.Cost,
		Precio:      product.Price,
		CategoriaID: product.CategoryID,
		ProveedorID: product.ProviderID,
	}, nil
}

// Update actualiza los datos del producto (acotado al tenant).
func (uc *ProductUseCase) Update(ctx context.Context, companyID, productID int64, in dto.ProductRequest) error {
	if err := validateProductRequest(in); err != nil {
		return err
	}
	categoryOK, providerOK, err := uc.catalogs.ValidateProductRefs(ctx, companyID, in.CategoriaID, in.ProveedorID)
	if err != nil {
		return err
	}
	if !categoryOK || !providerOK {
		return domain.ErrInvalidInput
	}
	err = uc.products.Update(ctx, &entity.Product{
		ID:          productID,
		CompanyID:   companyID,
		CategoryID:  in.CategoriaID,
		ProviderID:  in.ProveedorID,
		Description: in.Descripcion,
		Stock:       in.Stock,
		Cost:        in.Costo,
		Price:       in.Precio,
	})
	if err != nil {
		return err
	}
	uc.invalidateCatalog(ctx, companyID)
	return nil
}

// Delete elimina el producto (acotado al tenant).
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, productID int64) error {
	if err := uc.products.Delete(ctx, companyID, productID); err != nil {
		return err
	}
	uc.invalidateCatalog(ctx, companyID)
	return nil
}

func (uc *ProductUseCase) invalidateCatalog(ctx context.Context, companyID int64) {
	if err := uc.cache.Invalidate(ctx, companyID); err != nil {
		uc.log.Warn().Err(err).Int64("empresa_id", companyID).Msg("no se pudo invalidar el cache de catálogo")
	}
}

func validateProductRequest(in dto.ProductRequest) error {
	if in.ProveedorID <= 0 || in.CategoriaID <= 0 || strings.TrimSpace(in.Descripcion) == "" {
		return domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.Costo.LessThan(decimal.Zero) || in.Precio.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}
