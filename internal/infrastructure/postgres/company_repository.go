package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

// CompanyRepository implementa la persistencia de empresas (tenants).
type CompanyRepository struct {
	db Querier
}

func NewCompanyRepository(db Querier) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *entity.Company) (int64, error) {
	query := `
		INSERT INTO empresas (tenant_id, nombre, email)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, company.TenantID, company.Name, company.Email).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insertando empresa: %w", err)
	}
	return id, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, nombre, email, created_at FROM empresas WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultando empresa: %w", err)
	}
	return &c, nil
}

func (r *CompanyRepository) TenantIDExists(ctx context.Context, tenantID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM empresas WHERE tenant_id = $1)`, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificando tenant: %w", err)
	}
	return exists, nil
}
