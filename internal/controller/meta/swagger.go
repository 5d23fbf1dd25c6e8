package meta

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/visitstats/dashboard/docs"
	"github.com/visitstats/dashboard/internal/pkg/bininfo"
)

func RegisterSwagger(app *fiber.App) {
	docs.SwaggerInfo.Version = bininfo.Version
	app.Get("/swagger/*", swagger.HandlerDefault) // default
}
