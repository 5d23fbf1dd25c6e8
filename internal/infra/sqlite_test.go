package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/visitstats/dashboard/internal/pkg/testentry/fixture"
)

func TestLoadVisits(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, LoadVisits(ctx, db, "visit_log", fixture.Visits()))

	var count int
	require.NoError(t, db.NewSelect().TableExpr("?", bun.Ident("visit_log")).ColumnExpr("count(*)").Scan(ctx, &count))
	assert.Equal(t, len(fixture.Visits()), count)

	var anonymous int
	require.NoError(t, db.NewSelect().TableExpr("?", bun.Ident("visit_log")).ColumnExpr("count(*)").Where("customer IS NULL").Scan(ctx, &anonymous))
	assert.Equal(t, 1, anonymous)

	// loading twice into the same table fails and leaves the first load intact
	assert.Error(t, LoadVisits(ctx, db, "visit_log", fixture.Visits()))
}

func TestLoadVisitsStoresMinorUnits(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, LoadVisits(ctx, db, "visit_log", fixture.PriceTieVisits()))

	var kinds []string
	require.NoError(t, db.NewSelect().TableExpr("?", bun.Ident("visit_log")).
		ColumnExpr("DISTINCT typeof(food_cost)").Scan(ctx, &kinds))
	assert.Equal(t, []string{"integer"}, kinds)

	var sums []int64
	require.NoError(t, db.NewSelect().TableExpr("?", bun.Ident("visit_log")).
		ColumnExpr("SUM(food_cost)").
		Where("restaurant = ?", fixture.Tearoom).
		Group("dish").
		OrderExpr("MIN(visit_id)").
		Scan(ctx, &sums))
	assert.Equal(t, []int64{30, 30}, sums)
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := ParseS3URL("s3://exports/2023/visits.csv")
	require.NoError(t, err)
	assert.Equal(t, "exports", bucket)
	assert.Equal(t, "2023/visits.csv", key)

	for _, raw := range []string{"https://exports/visits.csv", "s3://exports", "s3:///visits.csv"} {
		_, _, err := ParseS3URL(raw)
		assert.Error(t, err, raw)
	}
}
