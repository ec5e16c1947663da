package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-saas-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "pos-saas-test"
)

func TestGenerateYParse(t *testing.T) {
	companyID := int64(42)
	token, err := jwt.Generate(testSecret, 7, &companyID, "administrador", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, companyID, *claims.CompanyID)
	assert.Equal(t, "administrador", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti único")
}

// El super_admin viaja sin empresa en el token.
func TestGenerate_SuperAdminSinEmpresa(t *testing.T) {
	token, err := jwt.Generate(testSecret, 1, nil, "super_admin", testIssuer, 60)
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Nil(t, claims.CompanyID)
	assert.Equal(t, "super_admin", claims.Role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	companyID := int64(42)
	token, err := jwt.Generate(testSecret, 7, &companyID, "vendedor", testIssuer, 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secret", token)
	require.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, 7, nil, "super_admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	require.Error(t, err, "un token expirado debe rechazarse")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", 7, nil, "vendedor", testIssuer, 60)
	require.Error(t, err)
}
