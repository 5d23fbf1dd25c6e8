package web

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/visitstats/dashboard/internal/constant"
	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/cachectrl"
	"github.com/visitstats/dashboard/internal/server/httpserver"
	"github.com/visitstats/dashboard/internal/server/svr"
	"github.com/visitstats/dashboard/internal/service"
	"github.com/visitstats/dashboard/internal/util/rekuest"
)

type Pages struct {
	fx.In

	DashboardService *service.Dashboard
	BrowseService    *service.Browse
}

func RegisterPages(web *svr.Web, c Pages) {
	web.Get("/", c.Dashboard)
	web.Get("/visits", c.Visits)
}

func (c *Pages) Dashboard(ctx *fiber.Ctx) error {
	var query model.DashboardQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	dashboard, err := c.DashboardService.Build(ctx.UserContext(), query.Restaurant)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.Render("dashboard", fiber.Map{
		"Title":     dashboard.Restaurant,
		"Dashboard": dashboard,
	}, httpserver.LayoutMain)
}

func (c *Pages) Visits(ctx *fiber.Ctx) error {
	var query model.WebPageQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}
	current := query.Page
	if current < 1 {
		current = 1
	}

	page, err := c.BrowseService.Page(ctx.UserContext(), constant.DefaultPageSize, (current-1)*constant.DefaultPageSize)
	if err != nil {
		return err
	}

	next := 0
	if page.HasNext() {
		next = current + 1
	}

	cachectrl.OptOut(ctx)
	return ctx.Render("visits", fiber.Map{
		"Title":       "Raw data",
		"Page":        page,
		"CurrentPage": current,
		"PrevPage":    current - 1,
		"NextPage":    next,
	}, httpserver.LayoutMain)
}
