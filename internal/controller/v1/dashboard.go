package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/server/svr"
	"github.com/visitstats/dashboard/internal/service"
	"github.com/visitstats/dashboard/internal/util/rekuest"
)

type Dashboard struct {
	fx.In

	DashboardService *service.Dashboard
}

func RegisterDashboard(v1 *svr.V1, c Dashboard) {
	v1.Get("/dashboard", c.GetDashboard)
}

// @Summary      Get the whole dashboard
// @Description  Every dashboard answer in one response. Per-restaurant answers are for the given restaurant, or the featured restaurant when omitted.
// @Tags         Dashboard
// @Produce      json
// @Param        restaurant  query     string  false  "Restaurant name; defaults to the featured restaurant"
// @Success      200         {object}  model.Dashboard
// @Failure      400         {object}  model.ErrorResponse  "Invalid restaurant"
// @Failure      500         {object}  model.ErrorResponse  "An unexpected error occurred"
// @Router       /api/v1/dashboard [GET]
func (c *Dashboard) GetDashboard(ctx *fiber.Ctx) error {
	var query model.DashboardQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	dashboard, err := c.DashboardService.Build(ctx.UserContext(), query.Restaurant)
	if err != nil {
		return err
	}

	return ctx.JSON(dashboard)
}
