package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appHTTP "github.com/electromovil99-art/sapisoft-ledger/internal/interfaces/http"
	"github.com/electromovil99-art/sapisoft-ledger/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "secreto-de-test"
	testUserID    = "user-1"
	testBranchID  = "sucursal-a"
)

// buildTestApp app mínima con una ruta protegida por rol y otra solo con auth.
func buildTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api", appHTTP.AuthMiddleware(testJWTSecret))
	api.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   appHTTP.GetUserID(c),
			"branch_id": appHTTP.GetBranchID(c),
			"role":      appHTTP.GetRole(c),
		})
	})
	api.Post("/admin", appHTTP.RequireRole("admin", "almacenero"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, testUserID, testBranchID, role, "test", 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokenDevuelve401(t *testing.T) {
	app := buildTestApp()

	// Caso: sin header Authorization.
	status := doRequest(t, app, fiber.MethodGet, "/api/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthMiddleware_TokenInvalidoDevuelve401(t *testing.T) {
	app := buildTestApp()

	// Caso 1: token basura.
	status := doRequest(t, app, fiber.MethodGet, "/api/me", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// Caso 2: token firmado con otro secreto.
	other, err := jwt.Generate("otro-secreto", testUserID, testBranchID, "cajero", "test", 60)
	require.NoError(t, err)
	status = doRequest(t, app, fiber.MethodGet, "/api/me", other)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthMiddleware_TokenValidoExponeClaims(t *testing.T) {
	app := buildTestApp()

	status := doRequest(t, app, fiber.MethodGet, "/api/me", tokenForRole(t, "cajero"))
	assert.Equal(t, fiber.StatusOK, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp()

	status := doRequest(t, app, fiber.MethodPost, "/api/admin", tokenForRole(t, "admin"))
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRole_AlmaceneroTambienAccede(t *testing.T) {
	app := buildTestApp()

	// Caso: la ruta acepta más de un rol.
	status := doRequest(t, app, fiber.MethodPost, "/api/admin", tokenForRole(t, "almacenero"))
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRole_CajeroRecibe403(t *testing.T) {
	app := buildTestApp()

	status := doRequest(t, app, fiber.MethodPost, "/api/admin", tokenForRole(t, "cajero"))
	assert.Equal(t, fiber.StatusForbidden, status)
}
