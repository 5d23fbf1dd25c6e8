package cachectrl

import (
	"github.com/gofiber/fiber/v2"
)

// OptOut marks the response as not cacheable by browsers and intermediaries, so that every
// page load reflects the current state of the visits table.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}

// Middleware applies OptOut to every response passing through it.
func Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		OptOut(ctx)
		return ctx.Next()
	}
}
