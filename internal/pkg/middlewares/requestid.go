package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visitstats/dashboard/internal/constant"
	"github.com/visitstats/dashboard/internal/pkg/flog"
)

// RequestID copies the request id generated by the logger chain into ctx.Locals,
// where the error handler and sentry enrichment look for it.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := flog.IDFromFiberCtx(c)
		if ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
