package locale

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"madrasaku_backend/internals/configs"
)

const (
	LangEnglish = "en"
	LangHindi   = "hi"
	LangUrdu    = "ur"
)

// DefaultLang is the resolution fallback, configurable via DEFAULT_LANG.
func DefaultLang() string {
	if IsSupported(configs.DefaultLang) {
		return configs.DefaultLang
	}
	return LangEnglish
}

// Locals keys set by the locale middleware.
const (
	LocLang = "lang"
	LocRTL  = "rtl"
)

var supported = map[string]struct{}{
	LangEnglish: {},
	LangHindi:   {},
	LangUrdu:    {},
}

func IsSupported(lang string) bool {
	_, ok := supported[lang]
	return ok
}

// IsRTL reports whether lang renders right-to-left (only Urdu here).
func IsRTL(lang string) bool {
	return lang == LangUrdu
}

/* ===============================
   Localized text bundle (jsonb)
=================================*/

// Text holds the same value in all three supported languages.
// Stored as a jsonb column: {"en":"...","hi":"...","ur":"..."}.
type Text struct {
	En string `json:"en"`
	Hi string `json:"hi"`
	Ur string `json:"ur"`
}

// Resolve returns the variant for lang, falling back en → hi → ur → "".
func (t Text) Resolve(lang string) string {
	var first string
	switch lang {
	case LangHindi:
		first = t.Hi
	case LangUrdu:
		first = t.Ur
	default:
		first = t.En
	}
	for _, v := range []string{first, t.En, t.Hi, t.Ur} {
		if v != "" {
			return v
		}
	}
	return ""
}

func (t Text) IsZero() bool {
	return t.En == "" && t.Hi == "" && t.Ur == ""
}

// Merge overlays the non-nil variants of a partial update onto t.
func (t Text) Merge(p *TextPatch) Text {
	if p == nil {
		return t
	}
	if p.En != nil {
		t.En = *p.En
	}
	if p.Hi != nil {
		t.Hi = *p.Hi
	}
	if p.Ur != nil {
		t.Ur = *p.Ur
	}
	return t
}

// TextPatch is the partial-update shape: only supplied variants overwrite.
type TextPatch struct {
	En *string `json:"en,omitempty"`
	Hi *string `json:"hi,omitempty"`
	Ur *string `json:"ur,omitempty"`
}

func (t Text) Value() (driver.Value, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Text) Scan(src any) error {
	if src == nil {
		*t = Text{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("locale: unsupported Scan source for Text")
	}
}

func (Text) GormDataType() string {
	return "jsonb"
}

/* ===============================
   Per-request language selection
=================================*/

// Pick selects the request language: ?lang= (if supported) → Accept-Language
// prefix match → configured default.
func Pick(c *fiber.Ctx) string {
	if q := strings.ToLower(strings.TrimSpace(c.Query("lang"))); q != "" {
		if IsSupported(q) {
			return q
		}
	}
	accept := c.Get(fiber.HeaderAcceptLanguage)
	for _, part := range strings.Split(accept, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if tag == "" {
			continue
		}
		if i := strings.IndexByte(tag, '-'); i > 0 {
			tag = tag[:i]
		}
		if IsSupported(tag) {
			return tag
		}
	}
	return DefaultLang()
}

// FromLocals reads the language stored by the locale middleware.
func FromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocLang).(string); ok && v != "" {
		return v
	}
	return DefaultLang()
}

func (t Text) String() string {
	return fmt.Sprintf("{en:%q hi:%q ur:%q}", t.En, t.Hi, t.Ur)
}
