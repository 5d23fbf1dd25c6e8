package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"github.com/uptrace/bun/extra/bunotel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/pkg/money"
	"github.com/visitstats/dashboard/internal/pkg/observability"
	"github.com/visitstats/dashboard/internal/pkg/visitcsv"
)

const csvLoadTimeout = time.Minute

// Database opens the read handle for the configured source. The tracer provider is taken
// so that the global provider is installed before bunotel looks it up.
func Database(conf *appconfig.Config, lc fx.Lifecycle, _ trace.TracerProvider) (*bun.DB, error) {
	var (
		db  *bun.DB
		err error
	)
	switch conf.Source {
	case appconfig.SourceCSV:
		db, err = openCSVSource(conf)
	default:
		db, err = openPostgres(conf)
	}
	if err != nil {
		return nil, err
	}

	if conf.DevMode {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(conf.BunDebugVerbose),
		))
	}
	if conf.TracingEnabled {
		db.AddQueryHook(bunotel.NewQueryHook(
			bunotel.WithDBName(conf.VisitsTable),
		))
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

func openPostgres(conf *appconfig.Config) (*bun.DB, error) {
	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(conf.DatabaseURL)))
	pgdb.SetMaxOpenConns(conf.PostgresMaxOpenConns)
	pgdb.SetMaxIdleConns(conf.PostgresMaxIdleConns)
	pgdb.SetConnMaxLifetime(conf.PostgresConnMaxLifeTime)
	pgdb.SetConnMaxIdleTime(conf.PostgresConnMaxIdleTime)

	db := bun.NewDB(pgdb, pgdialect.New())

	err := retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			return db.PingContext(ctx)
		},
		retry.Attempts(conf.DatabaseConnectAttempts),
		retry.Delay(conf.DatabaseConnectDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Err(err).
				Str("evt.name", "infra.postgres.retry").
				Uint("attempt", n+1).
				Msg("failed to ping database. retrying...")
		}),
	)
	if err != nil {
		log.Error().
			Err(err).
			Str("evt.name", "infra.postgres.unreachable").
			Msg("failed to connect to database")
		_ = db.Close()
		return nil, errors.Wrap(err, "infra: postgres: database unreachable")
	}

	log.Info().
		Str("evt.name", "infra.postgres.connected").
		Msg("connected to database")

	return db, nil
}

func openCSVSource(conf *appconfig.Config) (*bun.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), csvLoadTimeout)
	defer cancel()

	scale, err := money.Scale(conf.Currency)
	if err != nil {
		return nil, errors.Wrap(err, "infra: csv: invalid currency")
	}

	r, err := OpenCSV(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "infra: csv: failed to open")
	}
	defer r.Close()

	visits, err := visitcsv.Decode(r, scale)
	if err != nil {
		return nil, errors.Wrapf(err, "infra: csv: failed to decode %s", conf.CSVPath)
	}

	db, err := OpenSQLite()
	if err != nil {
		return nil, errors.Wrap(err, "infra: csv: failed to open sqlite")
	}
	if err := LoadVisits(ctx, db, conf.VisitsTable, visits); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "infra: csv: failed to load visits")
	}

	observability.DatasetRows.Set(float64(len(visits)))
	log.Info().
		Str("evt.name", "infra.csv.loaded").
		Str("path", conf.CSVPath).
		Int("rows", len(visits)).
		Msg("loaded visits from csv")

	return db, nil
}
