package locale

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasaku_backend/internals/configs"
)

func TestResolveFallback(t *testing.T) {
	full := Text{En: "Ahmed", Hi: "अहमद", Ur: "احمد"}

	assert.Equal(t, "अहमद", full.Resolve(LangHindi))
	assert.Equal(t, "احمد", full.Resolve(LangUrdu))
	assert.Equal(t, "Ahmed", full.Resolve(LangEnglish))

	// unsupported language behaves like the default
	assert.Equal(t, "Ahmed", full.Resolve("fr"))

	// missing variant falls back to en
	partial := Text{En: "Rice"}
	assert.Equal(t, "Rice", partial.Resolve(LangHindi))
	assert.Equal(t, "Rice", partial.Resolve(LangUrdu))

	// en missing too: next non-empty variant wins
	hiOnly := Text{Hi: "चावल"}
	assert.Equal(t, "चावल", hiOnly.Resolve(LangUrdu))

	assert.Equal(t, "", Text{}.Resolve(LangEnglish))
}

func TestMerge(t *testing.T) {
	base := Text{En: "Ahmed", Hi: "अहमद", Ur: "احمد"}

	assert.Equal(t, base, base.Merge(nil))

	hi := "अहमद खान"
	merged := base.Merge(&TextPatch{Hi: &hi})
	assert.Equal(t, "Ahmed", merged.En)
	assert.Equal(t, hi, merged.Hi)
	assert.Equal(t, "احمد", merged.Ur)

	// empty string is a deliberate overwrite, not "keep"
	empty := ""
	cleared := base.Merge(&TextPatch{En: &empty})
	assert.Equal(t, "", cleared.En)
}

func TestIsRTL(t *testing.T) {
	assert.True(t, IsRTL(LangUrdu))
	assert.False(t, IsRTL(LangEnglish))
	assert.False(t, IsRTL(LangHindi))
	assert.False(t, IsRTL("fr"))
}

func TestTextScanValue(t *testing.T) {
	v, err := Text{En: "Rice", Hi: "चावल"}.Value()
	require.NoError(t, err)

	var out Text
	require.NoError(t, out.Scan(v))
	assert.Equal(t, "Rice", out.En)
	assert.Equal(t, "चावल", out.Hi)

	require.NoError(t, out.Scan(nil))
	assert.True(t, out.IsZero())
}

func pickVia(t *testing.T, target, acceptLang string) string {
	t.Helper()
	app := fiber.New()
	app.Get("/pick", func(c *fiber.Ctx) error {
		return c.SendString(Pick(c))
	})

	req := httptest.NewRequest("GET", target, nil)
	if acceptLang != "" {
		req.Header.Set(fiber.HeaderAcceptLanguage, acceptLang)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPickPrecedence(t *testing.T) {
	// query param wins over header
	assert.Equal(t, "ur", pickVia(t, "/pick?lang=ur", "hi-IN,hi;q=0.9"))

	// unsupported query falls through to the header
	assert.Equal(t, "hi", pickVia(t, "/pick?lang=fr", "hi-IN,hi;q=0.9"))

	// header prefix matching
	assert.Equal(t, "ur", pickVia(t, "/pick", "ur-PK"))
	assert.Equal(t, "hi", pickVia(t, "/pick", "fr-FR,hi;q=0.8"))

	// nothing usable: default en
	assert.Equal(t, "en", pickVia(t, "/pick", "fr-FR"))
	assert.Equal(t, "en", pickVia(t, "/pick", ""))
}

func TestConfiguredDefaultLang(t *testing.T) {
	orig := configs.DefaultLang
	t.Cleanup(func() { configs.DefaultLang = orig })

	configs.DefaultLang = "hi"
	assert.Equal(t, "hi", DefaultLang())
	assert.Equal(t, "hi", pickVia(t, "/pick", "fr-FR"))

	// an unsupported configured value falls back to en
	configs.DefaultLang = "ar"
	assert.Equal(t, "en", DefaultLang())

	configs.DefaultLang = ""
	assert.Equal(t, "en", DefaultLang())
}
