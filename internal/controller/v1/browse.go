package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/server/svr"
	"github.com/visitstats/dashboard/internal/service"
	"github.com/visitstats/dashboard/internal/util/rekuest"
)

type Browse struct {
	fx.In

	BrowseService *service.Browse
}

func RegisterBrowse(v1 *svr.V1, c Browse) {
	v1.Get("/restaurants", c.GetRestaurants)
	v1.Get("/visits", c.GetVisits)
}

// @Summary  Get restaurant names
// @Tags     Browse
// @Produce  json
// @Success  200  {array}   string
// @Failure  500  {object}  model.ErrorResponse  "An unexpected error occurred"
// @Router   /api/v1/restaurants [GET]
func (c *Browse) GetRestaurants(ctx *fiber.Ctx) error {
	restaurants, err := c.BrowseService.Restaurants(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(restaurants)
}

// @Summary  Get raw visits
// @Tags     Browse
// @Produce  json
// @Param    limit   query     int  false  "Page size; defaults to 50"  minimum(0)  maximum(500)
// @Param    offset  query     int  false  "Rows to skip"               minimum(0)
// @Success  200     {object}  model.VisitPage
// @Failure  400     {object}  model.ErrorResponse  "Invalid pagination"
// @Failure  500     {object}  model.ErrorResponse  "An unexpected error occurred"
// @Router   /api/v1/visits [GET]
func (c *Browse) GetVisits(ctx *fiber.Ctx) error {
	var query model.PageQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	page, err := c.BrowseService.Page(ctx.UserContext(), query.Limit, query.Offset)
	if err != nil {
		return err
	}

	return ctx.JSON(page)
}
