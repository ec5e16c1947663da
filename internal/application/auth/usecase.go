package auth

import (
	"context"
	"time"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
	"github.com/jhoicas/pos-saas-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. Emite el token
// con user_id, empresa_id y rol que el middleware de tenant consume.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el correo ya está registrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Correo == "" || in.Password == "" || in.EmpresaID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(ctx, in.Correo)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	company, err := uc.companyRepo.GetByID(ctx, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound // empresa no existe
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Nombre
	if name == "" {
		name = in.Correo
	}
	role := in.Rol
	if role == "" {
		role = entity.RoleVendedor
	}
	companyID := in.EmpresaID
	user := &entity.User{
		CompanyID:    &companyID,
		Email:        in.Correo,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    time.Now(),
	}
	id, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return toUserResponse(user), nil
}

// Login verifica correo/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Correo)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// TenantIDAvailable verifica si un tenant_id externo está disponible para registro.
func (uc *AuthUseCase) TenantIDAvailable(ctx context.Context, tenantID string) (bool, error) {
	if tenantID == "" {
		return false, domain.ErrInvalidInput
	}
	exists, err := uc.companyRepo.TenantIDExists(ctx, tenantID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		EmpresaID: u.CompanyID,
		Correo:    u.Email,
		Nombre:    u.Name,
		Rol:       u.Role,
		Estado:    u.Status,
		CreadoEn:  u.CreatedAt,
	}
}
