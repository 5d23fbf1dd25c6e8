package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/visitstats/dashboard/cmd/app/report"
	"github.com/visitstats/dashboard/cmd/app/server"
	"github.com/visitstats/dashboard/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "visitstats",
		Description: "Restaurant visit dashboard. Built with Go, fiber, bun and go.uber.org/fx. Reads visits from PostgreSQL or a CSV export.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			report.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
