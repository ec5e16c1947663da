package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-saas-api/internal/application/auth"
	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/pos-saas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) (int64, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return 0, domain.ErrEmailAlreadyExists
	}
	cp := *user
	cp.ID = r.nextID
	r.nextID++
	r.byEmail[cp.Email] = &cp
	return cp.ID, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
	tenantIDs map[string]bool
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{
		companies: make(map[int64]*entity.Company),
		tenantIDs: make(map[string]bool),
	}
	for _, c := range companies {
		r.companies[c.ID] = c
		r.tenantIDs[c.TenantID] = true
	}
	return r
}

func (r *fakeCompanyRepo) Create(_ context.Context, _ *entity.Company) (int64, error) {
	panic("no usado")
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCompanyRepo) TenantIDExists(_ context.Context, tenantID string) (bool, error) {
	return r.tenantIDs[tenantID], nil
}

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC(users *fakeUserRepo, companies *fakeCompanyRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(users, companies, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pos-saas-test",
	})
}

func testCompany() *entity.Company {
	return &entity.Company{
		ID:        10,
		TenantID:  "abarrotes-lupita",
		Name:      "Abarrotes Lupita",
		Email:     "contacto@lupita.mx",
		CreatedAt: time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Registro y login redondo: el token emitido lleva user_id, empresa y rol.
func TestRegisterYLogin(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users, newFakeCompanyRepo(testCompany()))
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		EmpresaID: 10,
		Correo:    "cajero@lupita.mx",
		Password:  "secreta123",
		Nombre:    "Cajero Uno",
	})
	require.NoError(t, err)
	require.NotNil(t, user.EmpresaID)
	assert.Equal(t, int64(10), *user.EmpresaID)
	assert.Equal(t, entity.RoleVendedor, user.Rol, "sin rol explícito se asigna vendedor")
	assert.Equal(t, "active", user.Estado)

	stored := users.byEmail["cajero@lupita.mx"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda plano")

	resp, err := uc.Login(ctx, dto.LoginRequest{Correo: "cajero@lupita.mx", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, int64(10), *claims.CompanyID)
	assert.Equal(t, entity.RoleVendedor, claims.Role)
}

func TestRegister_CorreoDuplicado(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users, newFakeCompanyRepo(testCompany()))
	ctx := context.Background()

	in := dto.RegisterRequest{EmpresaID: 10, Correo: "cajero@lupita.mx", Password: "secreta123"}
	_, err := uc.RegisterUser(ctx, in)
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, in)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EmpresaInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCompanyRepo())

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		EmpresaID: 99, Correo: "x@y.mx", Password: "secreta123",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users, newFakeCompanyRepo(testCompany()))
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		EmpresaID: 10, Correo: "cajero@lupita.mx", Password: "secreta123",
	})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Correo: "cajero@lupita.mx", Password: "otra"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users, newFakeCompanyRepo(testCompany()))
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		EmpresaID: 10, Correo: "cajero@lupita.mx", Password: "secreta123",
	})
	require.NoError(t, err)
	users.byEmail["cajero@lupita.mx"].Status = "suspended"

	_, err = uc.Login(ctx, dto.LoginRequest{Correo: "cajero@lupita.mx", Password: "secreta123"})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTenantIDAvailable(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCompanyRepo(testCompany()))
	ctx := context.Background()

	available, err := uc.TenantIDAvailable(ctx, "abarrotes-lupita")
	require.NoError(t, err)
	assert.False(t, available, "un tenant_id ya registrado no está disponible")

	available, err = uc.TenantIDAvailable(ctx, "ferreteria-don-jose")
	require.NoError(t, err)
	assert.True(t, available)

	_, err = uc.TenantIDAvailable(ctx, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
