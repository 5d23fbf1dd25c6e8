package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/visitstats/dashboard/internal/pkg/apierr"
	"github.com/visitstats/dashboard/internal/pkg/bininfo"
	"github.com/visitstats/dashboard/internal/pkg/flog"
	"github.com/visitstats/dashboard/internal/server/svr"
	"github.com/visitstats/dashboard/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

// @Summary  Get build information
// @Tags     Meta
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /api/_/bininfo [GET]
func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

// @Summary  Check service health
// @Tags     Meta
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  model.ErrorResponse  "The visits database is not reachable"
// @Router   /api/_/health [GET]
func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		flog.FromFiberCtx(ctx).Warn().
			Err(err).
			Str("evt.name", "health.unreachable").
			Msg("health check failed")
		return apierr.ErrUnavailable
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}
