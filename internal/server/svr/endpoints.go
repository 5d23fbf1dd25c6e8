package svr

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/pkg/apierr"
	"github.com/visitstats/dashboard/internal/pkg/cachectrl"
)

// V1 is the JSON API, mounted at /api/v1.
type V1 struct {
	fiber.Router
}

// Meta holds operational endpoints, mounted at /api/_.
type Meta struct {
	fiber.Router
}

// Web serves the HTML pages from the site root.
type Web struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config) (*V1, *Meta, *Web) {
	v1 := app.Group("/api/v1", cachectrl.Middleware())
	if !conf.DevMode {
		// every v1 request runs aggregate queries against the source database
		v1.Use(limiter.New(limiter.Config{
			Max:        120,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return apierr.New(fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS",
					"Your client is sending requests too frequently. Every request runs fresh queries; please slow down.")
			},
		}))
	}
	meta := app.Group("/api/_")

	return &V1{Router: v1}, &Meta{Router: meta}, &Web{Router: app}
}
