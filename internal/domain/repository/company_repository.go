package repository

import (
	"context"

	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (tenant).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	// TenantIDExists verifica disponibilidad del identificador externo elegido
	// por la empresa al registrarse.
	TenantIDExists(ctx context.Context, tenantID string) (bool, error)
}
