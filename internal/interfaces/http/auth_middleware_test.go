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

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	"github.com/jhoicas/Inventario-restock/internal/domain/authz"
	apphttp "github.com/jhoicas/Inventario-restock/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Inventario-restock/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testCustomerID = "00000000-0000-0000-0000-000000000002"
	testIssuer     = "inventario-restock-test"
	testExpMin     = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar el principal
//   - RequireAnyPermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(perms ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, testIssuer),
		apphttp.RequireAnyPermission(perms...),
		func(c *fiber.Ctx) error {
			p := apphttp.GetPrincipal(c)
			return c.JSON(fiber.Map{
				"ok":          true,
				"user_id":     p.UserID,
				"customer_id": p.CustomerID,
				"token_len":   len(p.Token),
			})
		},
	)
	return app
}

// tokenWith genera un JWT con los permisos indicados.
func tokenWith(t *testing.T, perms ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, pkgjwt.Identity{
		UserID:      testUserID,
		CustomerID:  testCustomerID,
		Roles:       []string{"manager"},
		Permissions: perms,
	}, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, method, path, auth string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, body
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e), string(body))
	return e.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp, body := doRequest(t, buildTestApp(authz.PermLowStockView), http.MethodGet, "/protected", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, body))
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	resp, body := doRequest(t, buildTestApp(authz.PermLowStockView), http.MethodGet, "/protected", "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, body))
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", testIssuer, pkgjwt.Identity{UserID: testUserID}, testExpMin)
	require.NoError(t, err)

	resp, body := doRequest(t, buildTestApp(authz.PermLowStockView), http.MethodGet, "/protected", "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, body))
}

func TestAuthMiddleware_IssuerDistinto(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "otro-servicio", pkgjwt.Identity{UserID: testUserID}, testExpMin)
	require.NoError(t, err)

	resp, body := doRequest(t, buildTestApp(authz.PermLowStockView), http.MethodGet, "/protected", "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, body))
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, pkgjwt.Identity{UserID: testUserID}, -5)
	require.NoError(t, err)

	resp, _ := doRequest(t, buildTestApp(authz.PermLowStockView), http.MethodGet, "/protected", "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_CargaPrincipal(t *testing.T) {
	auth := tokenWith(t, authz.PermLowStockView)
	resp, body := doRequest(t, buildTestApp(authz.PermLowStockView), http.MethodGet, "/protected", auth)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, testUserID, out["user_id"])
	assert.Equal(t, testCustomerID, out["customer_id"])
	assert.EqualValues(t, len(auth)-len("Bearer "), out["token_len"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequirePermission / RequireAnyPermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAnyPermission_SinPermiso(t *testing.T) {
	resp, body := doRequest(t, buildTestApp(authz.PermLowStockView, authz.PermReportView),
		http.MethodGet, "/protected", tokenWith(t, authz.PermInventoryView))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, body))
}

func TestRequireAnyPermission_UnoBasta(t *testing.T) {
	resp, _ := doRequest(t, buildTestApp(authz.PermLowStockView, authz.PermReportView),
		http.MethodGet, "/protected", tokenWith(t, authz.PermReportView))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermission_SinAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/x", apphttp.RequirePermission(authz.PermLowStockView), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp, body := doRequest(t, app, http.MethodGet, "/x", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, body))
}
