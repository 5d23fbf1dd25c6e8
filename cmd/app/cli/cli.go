package cli

import (
	"context"
	"time"

	"go.uber.org/fx"

	"github.com/visitstats/dashboard/internal/app"
	"github.com/visitstats/dashboard/internal/app/appcontext"
)

// Start runs a one-shot command inside the CLI flavoured fx graph. The graph is stopped
// right after every fx.Invoke in module has returned.
func Start(module fx.Option) error {
	fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), module)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return err
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return fxApp.Stop(stopCtx)
}
