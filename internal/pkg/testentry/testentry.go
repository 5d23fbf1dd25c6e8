// Package testentry boots the application graph for end-to-end package tests.
package testentry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/visitstats/dashboard/internal/app"
	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/app/appcontext"
	"github.com/visitstats/dashboard/internal/pkg/testentry/fixture"
)

// Config returns a server configuration reading the fixture dataset from a CSV file.
func Config(t *testing.T) *appconfig.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "visits.csv")
	if err := os.WriteFile(path, fixture.CSV(), 0o600); err != nil {
		t.Fatal(err)
	}

	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			ServiceAddress:            "127.0.0.1:0",
			TrustedProxies:            []string{"127.0.0.1"},
			Source:                    appconfig.SourceCSV,
			CSVPath:                   path,
			VisitsTable:               "visits",
			AggregateIn:               appconfig.AggregateInDatabase,
			FeaturedRestaurant:        fixture.EndOfUniverse,
			Currency:                  "USD",
			QueryTimeout:              5 * time.Second,
			HTTPServerShutdownTimeout: 5 * time.Second,
		},
		AppContext: appcontext.Declare(appcontext.EnvServer),
	}
}

// Populate starts the application graph for conf and fills targets from it. The graph is
// stopped when the test finishes.
func Populate(t *testing.T, conf *appconfig.Config, targets ...any) {
	t.Helper()

	opts := app.OptionsWithConfig(conf, fx.Populate(targets...))
	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts = append(opts, fx.NopLogger)
	log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))

	fxApp := fx.New(opts...)
	if err := fxApp.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = fxApp.Stop(ctx)
	})
}
