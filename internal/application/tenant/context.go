// Package tenant resuelve el alcance multi-tenant de un principal autenticado.
// Toda consulta aguas abajo deriva su filtro `empresa_id = ?` de este resultado;
// la ausencia de filtro (super_admin) significa lectura cross-tenant.
package tenant

import (
	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

// Principal es el usuario autenticado tal como llega del token.
type Principal struct {
	UserID    int64
	Role      string
	CompanyID *int64
}

// Scope es el alcance resuelto: o bien super_admin sin tenant, o bien un tenant
// obligatorio.
type Scope struct {
	IsSuperAdmin bool
	TenantID     *int64
}

// Resolve produce el alcance del principal. Resolución pura, sin efectos:
//   - super_admin queda sin tenant (lecturas sin filtro de empresa);
//   - cualquier otro rol exige empresa asignada; sin ella se rechaza con
//     ErrTenantMissing y la petición nunca avanza.
func Resolve(p Principal) (Scope, error) {
	if p.Role == entity.RoleSuperAdmin {
		return Scope{IsSuperAdmin: true, TenantID: nil}, nil
	}
	if p.CompanyID == nil {
		return Scope{}, domain.ErrTenantMissing
	}
	return Scope{IsSuperAdmin: false, TenantID: p.CompanyID}, nil
}

// RequireTenant devuelve el tenant del alcance, o ErrForbidden para un
// super_admin: las operaciones de mutación siempre exigen empresa.
func (s Scope) RequireTenant() (int64, error) {
	if s.TenantID == nil {
		return 0, domain.ErrForbidden
	}
	return *s.TenantID, nil
}
