package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/app/appcontext"
	"github.com/visitstats/dashboard/internal/controller"
	"github.com/visitstats/dashboard/internal/infra"
	"github.com/visitstats/dashboard/internal/pkg/logger"
	"github.com/visitstats/dashboard/internal/repo"
	"github.com/visitstats/dashboard/internal/server"
	"github.com/visitstats/dashboard/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	return OptionsWithConfig(conf, additionalOpts...)
}

// OptionsWithConfig assembles the fx graph from an already parsed configuration.
func OptionsWithConfig(conf *appconfig.Config, additionalOpts ...fx.Option) []fx.Option {
	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits
		fx.Invoke(infra.SentryInit),
	}

	if conf.AppContext.Env == appcontext.EnvServer {
		baseOpts = append(baseOpts,
			// Servers
			server.Module(),

			// Controllers
			controller.Module(controller.OptIncludeSwagger),

			// Profiler is only meaningful for long running processes
			fx.Invoke(infra.Datadog),
		)
	}

	baseOpts = append(baseOpts,
		// fx Extra Options
		fx.StartTimeout(30*time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5*time.Minute),
	)

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
