//go:build integration

package repo

import (
	"context"
	"database/sql"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/money"
	"github.com/visitstats/dashboard/internal/pkg/testentry/fixture"
	"github.com/visitstats/dashboard/internal/util/visitcalc"
)

func skipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

func startPostgres(t *testing.T) *bun.DB {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "visitstats",
				"POSTGRES_PASSWORD": "visitstats",
				"POSTGRES_DB":       "visitstats",
				"LC_COLLATE":        "en_US.UTF-8",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://visitstats:visitstats@%s:%s/visitstats?sslmode=disable", host, port.Port())
	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn))), pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `CREATE TABLE ? (
		visit_id   BIGINT PRIMARY KEY,
		restaurant TEXT NOT NULL,
		customer   TEXT,
		dish       TEXT NOT NULL,
		food_cost  NUMERIC(12, 2) NOT NULL
	)`, bun.Ident(testTable))
	require.NoError(t, err)

	return db
}

// insertDecimal writes visits the way a hosted table holds them, food_cost as a decimal amount.
func insertDecimal(t *testing.T, db *bun.DB, visits []*model.Visit) {
	t.Helper()

	for _, v := range visits {
		_, err := db.ExecContext(context.Background(),
			"INSERT INTO ? (visit_id, restaurant, customer, dish, food_cost) VALUES (?, ?, ?, ?, ?)",
			bun.Ident(testTable), v.VisitID, v.Restaurant, v.Customer, v.Dish,
			money.Decimal(v.FoodCost, fixture.Scale).String(),
		)
		require.NoError(t, err)
	}
}

func TestPostgresMatchesVisitCalc(t *testing.T) {
	db := startPostgres(t)
	visits := fixture.Visits()
	insertDecimal(t, db, visits)
	r := newRepoWithDB(t, db)
	ctx := context.Background()

	popular, err := r.CalcPopularDishes(ctx)
	require.NoError(t, err)
	assert.Equal(t, visitcalc.PopularDishes(visits), popular)

	profitable, err := r.CalcProfitableDishes(ctx)
	require.NoError(t, err)
	assert.Equal(t, visitcalc.ProfitableDishes(visits), profitable)

	top, err := r.CalcTopVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, visitcalc.TopVisitors(visits), top)

	revenue, err := r.CalcRevenue(ctx, fixture.EndOfUniverse)
	require.NoError(t, err)
	assert.EqualValues(t, 7550, revenue.Revenue)

	restaurants, err := r.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{fixture.BeanJuice, fixture.Cashew, fixture.EndOfUniverse}, restaurants)

	all, err := r.ListAllVisits(ctx)
	require.NoError(t, err)
	assert.Equal(t, visits, all)
}

func TestPostgresPriceTie(t *testing.T) {
	db := startPostgres(t)
	visits := fixture.PriceTieVisits()
	insertDecimal(t, db, visits)
	r := newRepoWithDB(t, db)

	all, err := r.ListAllVisits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, visits, all)

	assertMatchesVisitCalc(t, r, all)
}
