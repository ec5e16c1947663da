package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/pos-saas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/pos-saas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(7)
	testCompanyID = int64(42)
	testIssuer    = "pos-saas-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar el principal
//   - TenantMiddleware para resolver el alcance de empresa
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 con el alcance resuelto
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.TenantMiddleware(),
	}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		scope, ok := apphttp.GetScope(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		body := fiber.Map{"ok": true, "super_admin": scope.IsSuperAdmin}
		if scope.TenantID != nil {
			body["empresa_id"] = *scope.TenantID
		}
		return c.Status(fiber.StatusOK).JSON(body)
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenFor genera un JWT con el rol y la empresa indicados.
func tokenFor(t *testing.T, role string, companyID *int64) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, companyID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenManipulado(t *testing.T) {
	app := buildTestApp()
	companyID := testCompanyID
	header := tokenFor(t, "vendedor", &companyID) + "x"
	resp := doRequest(t, app, header)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TenantMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Un usuario con empresa llega al handler con su alcance acotado.
func TestTenantMiddleware_UsuarioConEmpresa(t *testing.T) {
	app := buildTestApp()
	companyID := testCompanyID
	resp := doRequest(t, app, tokenFor(t, "vendedor", &companyID))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["super_admin"])
	assert.Equal(t, float64(testCompanyID), body["empresa_id"])
}

// Un super_admin pasa sin empresa (alcance cross-tenant).
func TestTenantMiddleware_SuperAdminSinEmpresa(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, "super_admin", nil))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["super_admin"])
	assert.NotContains(t, body, "empresa_id")
}

// Un usuario común sin empresa en el token se rechaza con 403 antes del handler.
func TestTenantMiddleware_UsuarioSinEmpresaBloqueado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, "vendedor", nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TENANT_MISSING")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdministradorAccede(t *testing.T) {
	app := buildTestApp("administrador")
	companyID := testCompanyID
	resp := doRequest(t, app, tokenFor(t, "administrador", &companyID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"administrador debe poder acceder a ruta restringida a administrador")
}

func TestRequireRole_VendedorBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("administrador")
	companyID := testCompanyID
	resp := doRequest(t, app, tokenFor(t, "vendedor", &companyID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"vendedor no debe poder acceder a ruta restringida a administrador")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_MultiRol(t *testing.T) {
	app := buildTestApp("administrador", "vendedor")
	companyID := testCompanyID
	resp := doRequest(t, app, tokenFor(t, "vendedor", &companyID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"vendedor debe poder acceder a ruta que permite administrador o vendedor")
}
