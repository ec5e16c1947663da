package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-saas-api/internal/application/tenant"
	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

func TestResolve_SuperAdminSinTenant(t *testing.T) {
	scope, err := tenant.Resolve(tenant.Principal{UserID: 1, Role: entity.RoleSuperAdmin})
	require.NoError(t, err)
	assert.True(t, scope.IsSuperAdmin)
	assert.Nil(t, scope.TenantID, "el super_admin lee sin filtro de empresa")
}

func TestResolve_UsuarioConEmpresa(t *testing.T) {
	companyID := int64(42)
	scope, err := tenant.Resolve(tenant.Principal{
		UserID: 1, Role: entity.RoleVendedor, CompanyID: &companyID,
	})
	require.NoError(t, err)
	assert.False(t, scope.IsSuperAdmin)
	require.NotNil(t, scope.TenantID)
	assert.Equal(t, companyID, *scope.TenantID)
}

// Un usuario sin empresa (y sin rol super_admin) nunca avanza.
func TestResolve_UsuarioSinEmpresaRechazado(t *testing.T) {
	for _, role := range []string{entity.RoleAdministrador, entity.RoleVendedor, "otro"} {
		_, err := tenant.Resolve(tenant.Principal{UserID: 1, Role: role})
		require.ErrorIs(t, err, domain.ErrTenantMissing, "rol %q sin empresa debe rechazarse", role)
	}
}

// Las mutaciones exigen empresa: el super_admin queda fuera.
func TestRequireTenant(t *testing.T) {
	companyID := int64(42)

	got, err := tenant.Scope{TenantID: &companyID}.RequireTenant()
	require.NoError(t, err)
	assert.Equal(t, companyID, got)

	_, err = tenant.Scope{IsSuperAdmin: true}.RequireTenant()
	require.ErrorIs(t, err, domain.ErrForbidden,
		"el super_admin no puede ejecutar operaciones acotadas a una empresa")
}
