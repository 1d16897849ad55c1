// file: internals/middlewares/locale/locale_middleware.go
package locale

import (
	"github.com/gofiber/fiber/v2"

	"madrasaku_backend/internals/locale"
)

// LocaleMiddleware resolves the request language once (?lang= → Accept-
// Language → default) and hydrates locals for the response envelope.
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := locale.Pick(c)
		c.Locals(locale.LocLang, lang)
		c.Locals(locale.LocRTL, locale.IsRTL(lang))
		return c.Next()
	}
}
