package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzha1981/sport-za-sve-backend/internal/config"
	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/token"
)

func testApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/protected", Protected(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": GetUserID(c),
			"role":    GetRole(c),
		})
	})
	app.Get("/admin", Protected(cfg), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload["error"]
}

func TestProtectedMissingToken(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{JWTSecret: "test-secret"}}
	app := testApp(cfg)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token nije poslan", decodeError(t, resp.Body))
}

func TestProtectedInvalidToken(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{JWTSecret: "test-secret"}}
	app := testApp(cfg)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Neispravan token", decodeError(t, resp.Body))
}

func TestProtectedWrongSecret(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{JWTSecret: "test-secret"}}
	app := testApp(cfg)

	signed, err := token.Sign("other-secret", uuid.New(), "user")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedValidToken(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{JWTSecret: "test-secret"}}
	app := testApp(cfg)

	subject := uuid.New()
	signed, err := token.Sign("test-secret", subject, string(model.RoleKlub))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, subject.String(), payload["user_id"])
	assert.Equal(t, "klub", payload["role"])
}

func TestRequireAdmin(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{JWTSecret: "test-secret"}}
	app := testApp(cfg)

	signed, err := token.Sign("test-secret", uuid.New(), string(model.RoleUser))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Pristup dozvoljen samo adminima.", decodeError(t, resp.Body))

	signed, err = token.Sign("test-secret", uuid.New(), string(model.RoleAdmin))
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
