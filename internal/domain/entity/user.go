package entity

import "time"

// Roles válidos para User. El super_admin no pertenece a ninguna empresa
// (CompanyID nil) y puede leer datos de todos los tenants.
const (
	RoleSuperAdmin    = "super_admin"
	RoleAdministrador = "administrador"
	RoleVendedor      = "vendedor"
)

// User representa un usuario del sistema. CompanyID es nil solo para super_admin.
type User struct {
	ID           int64
	CompanyID    *int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
}
