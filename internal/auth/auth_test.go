package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"parts-backend/internal/config"
	"parts-backend/internal/database"
	"parts-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret: "0123456789abcdef0123456789abcdef",
	}
}

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "auth.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	cfg := newTestConfig()
	app := fiber.New()
	app.Post("/api/auth/register-admin", RegisterAdminHandler(cfg))
	app.Post("/api/auth/login", LoginHandler(cfg))

	protected := app.Group("", JWTMiddleware(cfg))
	protected.Get("/api/auth/me", MeHandler())
	protected.Post("/api/admin/users", RequireRole(models.RoleAdmin), CreateUserHandler())
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any, token string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRegisterAdminOnlyOnce(t *testing.T) {
	app := newAuthTestApp(t)

	payload := RegisterAdminRequest{Name: "Admin", Email: "admin@example.com", Password: "secret"}
	resp := postJSON(t, app, "/api/auth/register-admin", payload, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/register-admin", payload, "")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestLoginAndMe(t *testing.T) {
	app := newAuthTestApp(t)

	register := RegisterAdminRequest{Name: "Admin", Email: "Admin@Example.com", Password: "secret"}
	resp := postJSON(t, app, "/api/auth/register-admin", register, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// email is matched case-insensitively
	resp = postJSON(t, app, "/api/auth/login", LoginRequest{Email: "ADMIN@example.com", Password: "secret"}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, meResp.StatusCode)

	var me map[string]any
	require.NoError(t, json.NewDecoder(meResp.Body).Decode(&me))
	assert.Equal(t, "admin@example.com", me["email"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newAuthTestApp(t)

	register := RegisterAdminRequest{Name: "Admin", Email: "admin@example.com", Password: "secret"}
	resp := postJSON(t, app, "/api/auth/register-admin", register, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login", LoginRequest{Email: "admin@example.com", Password: "wrong"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleBlocksViewers(t *testing.T) {
	app := newAuthTestApp(t)

	register := RegisterAdminRequest{Name: "Admin", Email: "admin@example.com", Password: "secret"}
	resp := postJSON(t, app, "/api/auth/register-admin", register, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login", LoginRequest{Email: "admin@example.com", Password: "secret"}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))

	// admin creates a viewer
	resp = postJSON(t, app, "/api/admin/users", CreateUserRequest{
		Name: "Viewer", Email: "viewer@example.com", Password: "secret", Role: models.RoleViewer,
	}, login.Token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login", LoginRequest{Email: "viewer@example.com", Password: "secret"}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var viewerLogin struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&viewerLogin))

	// the viewer cannot create users
	resp = postJSON(t, app, "/api/admin/users", CreateUserRequest{
		Name: "Other", Email: "other@example.com", Password: "secret", Role: models.RoleViewer,
	}, viewerLogin.Token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
