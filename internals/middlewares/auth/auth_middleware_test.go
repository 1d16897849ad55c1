package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func extractVia(t *testing.T, authz, cookie string) string {
	t.Helper()
	app := fiber.New()
	app.Get("/token", func(c *fiber.Ctx) error {
		return c.SendString(ExtractToken(c))
	})

	req := httptest.NewRequest("GET", "/token", nil)
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	if cookie != "" {
		req.Header.Set("Cookie", CookieName+"="+cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc", extractVia(t, "Bearer abc", ""))
	assert.Equal(t, "abc", extractVia(t, "bearer abc", ""))

	// header present but not Bearer: cookie is NOT consulted
	assert.Equal(t, "", extractVia(t, "Basic abc", "cookie-token"))

	// no header: cookie fallback
	assert.Equal(t, "cookie-token", extractVia(t, "", "cookie-token"))

	assert.Equal(t, "", extractVia(t, "", ""))
}

func TestParseClaims(t *testing.T) {
	id := uuid.NewString()
	raw := signToken(t, jwt.MapClaims{
		"id":       id,
		"username": "admin",
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	claims, err := ParseClaims(raw, testSecret)
	require.NoError(t, err)
	assert.Equal(t, id, claims["id"])
	assert.Equal(t, "admin", claims["role"])

	_, err = ParseClaims(raw, "wrong-secret")
	assert.Error(t, err)

	expired := signToken(t, jwt.MapClaims{
		"id":  id,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)
	_, err = ParseClaims(expired, testSecret)
	assert.Error(t, err)

	_, err = ParseClaims("not-a-token", testSecret)
	assert.Error(t, err)
}

func TestExtractAdminID(t *testing.T) {
	id := uuid.New()

	got, err := extractAdminID(jwt.MapClaims{"id": id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	// sub is accepted as a fallback claim
	got, err = extractAdminID(jwt.MapClaims{"sub": id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = extractAdminID(jwt.MapClaims{"username": "admin"})
	assert.Error(t, err)

	_, err = extractAdminID(jwt.MapClaims{"id": "not-a-uuid"})
	assert.Error(t, err)
}

func TestRoleAllowed(t *testing.T) {
	required := []string{"parent"}
	assert.True(t, roleAllowed("parent", required))
	// admin supersedes any requirement
	assert.True(t, roleAllowed("admin", required))
	assert.False(t, roleAllowed("other", required))
	assert.False(t, roleAllowed("", required))
}
