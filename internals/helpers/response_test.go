package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasaku_backend/internals/locale"
)

func doRequest(t *testing.T, handler fiber.Handler, lang string) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		if lang != "" {
			c.Locals(locale.LocLang, lang)
		}
		return handler(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "", fiber.Map{"n": 1})
	}, "ur")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, "ur", body["lang"])
	assert.Equal(t, true, body["rtl"])
	assert.NotNil(t, body["data"])
}

func TestSuccessEnvelopeDefaultLang(t *testing.T) {
	_, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonCreated(c, "Student created", nil)
	}, "")

	assert.Equal(t, "en", body["lang"])
	assert.Equal(t, false, body["rtl"])
	assert.Equal(t, "Student created", body["message"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestErrorEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Student not found")
	}, "en")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Student not found", body["message"])
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestFromFiberError(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusConflict, "Demo data already loaded; clear it first"))
	}, "en")

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "CONFLICT", body["error_code"])
}

func TestJsonListPagination(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonList(c, "", []int{1, 2, 3}, BuildPagination(7, 1, 3))
	}, "en")

	assert.Equal(t, fiber.StatusOK, status)
	p, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 7, p["total"])
	assert.EqualValues(t, 3, p["total_pages"])
}
