package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/server/svr"
	"github.com/visitstats/dashboard/internal/service"
	"github.com/visitstats/dashboard/internal/util/rekuest"
)

type Stats struct {
	fx.In

	InsightService *service.Insight
}

func RegisterStats(v1 *svr.V1, c Stats) {
	v1.Get("/stats/visits", c.GetVisitCount)
	v1.Get("/stats/revenue", c.GetRevenue)
	v1.Get("/stats/dishes/popular", c.GetPopularDishes)
	v1.Get("/stats/dishes/profitable", c.GetProfitableDishes)
	v1.Get("/stats/customers/top", c.GetTopVisitors)
}

// @Summary      Get visit count of a restaurant
// @Description  Number of recorded visits of the restaurant, and the distinct named customers among them. An unknown restaurant yields zeros.
// @Tags         Stats
// @Produce      json
// @Param        restaurant  query     string  true  "Restaurant name"
// @Success      200         {object}  model.VisitCount
// @Failure      400         {object}  model.ErrorResponse  "Invalid or missing restaurant"
// @Failure      500         {object}  model.ErrorResponse  "An unexpected error occurred"
// @Router       /api/v1/stats/visits [GET]
func (c *Stats) GetVisitCount(ctx *fiber.Ctx) error {
	var query model.RestaurantQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	count, err := c.InsightService.VisitCount(ctx.UserContext(), query.Restaurant)
	if err != nil {
		return err
	}

	return ctx.JSON(count)
}

// @Summary      Get revenue of a restaurant
// @Description  Sum of food cost over every visit of the restaurant. An unknown restaurant yields 0.
// @Tags         Stats
// @Produce      json
// @Param        restaurant  query     string  true  "Restaurant name"
// @Success      200         {object}  model.Revenue
// @Failure      400         {object}  model.ErrorResponse  "Invalid or missing restaurant"
// @Failure      500         {object}  model.ErrorResponse  "An unexpected error occurred"
// @Router       /api/v1/stats/revenue [GET]
func (c *Stats) GetRevenue(ctx *fiber.Ctx) error {
	var query model.RestaurantQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	revenue, err := c.InsightService.Revenue(ctx.UserContext(), query.Restaurant)
	if err != nil {
		return err
	}

	return ctx.JSON(revenue)
}

// @Summary      Get the most popular dish of every restaurant
// @Description  The dish ordered most often at each restaurant. Ties go to the dish that was ordered first.
// @Tags         Stats
// @Produce      json
// @Success      200  {array}   model.DishRanking
// @Failure      500  {object}  model.ErrorResponse  "An unexpected error occurred"
// @Router       /api/v1/stats/dishes/popular [GET]
func (c *Stats) GetPopularDishes(ctx *fiber.Ctx) error {
	dishes, err := c.InsightService.PopularDishes(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(dishes)
}

// @Summary      Get the most profitable dish of every restaurant
// @Description  The dish with the highest summed food cost at each restaurant. Ties go to the dish that was ordered first.
// @Tags         Stats
// @Produce      json
// @Success      200  {array}   model.DishRanking
// @Failure      500  {object}  model.ErrorResponse  "An unexpected error occurred"
// @Router       /api/v1/stats/dishes/profitable [GET]
func (c *Stats) GetProfitableDishes(ctx *fiber.Ctx) error {
	dishes, err := c.InsightService.ProfitableDishes(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(dishes)
}

// @Summary      Get top visitors
// @Description  The most frequent named customer of every restaurant, and the customer with the most visits overall.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  model.TopVisitors
// @Failure      500  {object}  model.ErrorResponse  "An unexpected error occurred"
// @Router       /api/v1/stats/customers/top [GET]
func (c *Stats) GetTopVisitors(ctx *fiber.Ctx) error {
	top, err := c.InsightService.TopVisitors(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(top)
}
