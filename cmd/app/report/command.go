package report

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"golang.org/x/text/language"

	appcli "github.com/visitstats/dashboard/cmd/app/cli"
	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/pkg/money"
	"github.com/visitstats/dashboard/internal/service"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "print the dashboard to the terminal once and exit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "restaurant",
				Aliases: []string{"r"},
				Usage:   "restaurant to answer per-restaurant questions for; defaults to VISITSTATS_FEATURED_RESTAURANT",
			},
		},
		Action: func(c *cli.Context) error {
			restaurant := c.String("restaurant")
			return appcli.Start(fx.Invoke(func(conf *appconfig.Config, dashboardService *service.Dashboard) error {
				formatter, err := money.NewFormatter(conf.Currency, language.English)
				if err != nil {
					return err
				}

				ctx, cancel := context.WithTimeout(c.Context, conf.QueryTimeout*5)
				defer cancel()

				dashboard, err := dashboardService.Build(ctx, restaurant)
				if err != nil {
					return err
				}

				return Render(os.Stdout, dashboard, formatter)
			}))
		},
	}
}
