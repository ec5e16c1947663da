package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/application/tenant"
	"github.com/jhoicas/pos-saas-api/pkg/jwt"
)

// Locals keys para el principal autenticado y su alcance de tenant.
const (
	LocalPrincipal = "principal"
	LocalScope     = "tenant_scope"
)

// AuthMiddleware valida el Bearer Token JWT y deja el Principal en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipal, tenant.Principal{
			UserID:    claims.UserID,
			Role:      claims.Role,
			CompanyID: claims.CompanyID,
		})
		return c.Next()
	}
}

// TenantMiddleware resuelve el alcance de tenant del principal y lo deja en
// c.Locals. Un usuario no super_admin sin empresa asignada se rechaza con 403
// antes de llegar a cualquier handler.
func TenantMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := c.Locals(LocalPrincipal).(tenant.Principal)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		scope, err := tenant.Resolve(p)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TENANT_MISSING", Message: "usuario sin empresa asignada"})
		}
		c.Locals(LocalScope, scope)
		return c.Next()
	}
}

// RequireRole restringe la ruta a los roles indicados.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := c.Locals(LocalPrincipal).(tenant.Principal)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		for _, r := range roles {
			if p.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetPrincipal devuelve el principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) (tenant.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(tenant.Principal)
	return p, ok
}

// GetScope devuelve el alcance de tenant del contexto (después de TenantMiddleware).
func GetScope(c *fiber.Ctx) (tenant.Scope, bool) {
	s, ok := c.Locals(LocalScope).(tenant.Scope)
	return s, ok
}
