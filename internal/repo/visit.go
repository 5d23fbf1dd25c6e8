package repo

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"

	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/money"
)

// Visit runs read-only queries against the visits table. Every aggregate is pushed down to
// the database; ties are broken by the smallest visit_id of each candidate.
//
// Costs always leave the database as integer minor units. The SQLite source is loaded that
// way by infra.LoadVisits; a hosted PostgreSQL table keeps decimal amounts, which are rounded
// into minor units row by row before any sum.
type Visit struct {
	db    *bun.DB
	table string
	cost  bun.Safe
}

func NewVisit(db *bun.DB, conf *appconfig.Config) (*Visit, error) {
	r := &Visit{db: db, table: conf.VisitsTable, cost: bun.Safe("v.food_cost")}
	if db.Dialect().Name() == dialect.PG {
		scale, err := money.Scale(conf.Currency)
		if err != nil {
			return nil, errors.Wrap(err, "repo: visit: invalid currency")
		}
		r.cost = bun.Safe(fmt.Sprintf("CAST(ROUND(CAST(v.food_cost AS NUMERIC) * %d) AS BIGINT)", int64(math.Pow10(int(scale)))))
	}
	return r, nil
}

func (r *Visit) from() *bun.SelectQuery {
	return r.db.NewSelect().TableExpr("? AS v", bun.Ident(r.table))
}

// byRestaurant orders rows by restaurant in byte order, matching Go string comparison
// regardless of the database collation.
func (r *Visit) byRestaurant(q *bun.SelectQuery) *bun.SelectQuery {
	if r.db.Dialect().Name() == dialect.PG {
		return q.OrderExpr(`restaurant COLLATE "C"`)
	}
	return q.Order("restaurant")
}

func (r *Visit) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Visit) CalcVisitCount(ctx context.Context, restaurant string) (*model.VisitCount, error) {
	result := &model.VisitCount{Restaurant: restaurant}
	err := r.from().
		ColumnExpr("COUNT(*) AS visits").
		ColumnExpr("COUNT(DISTINCT customer) AS unique_customers").
		Where("restaurant = ?", restaurant).
		Scan(ctx, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Visit) CalcRevenue(ctx context.Context, restaurant string) (*model.Revenue, error) {
	result := &model.Revenue{Restaurant: restaurant}
	err := r.from().
		ColumnExpr("COALESCE(SUM(?), 0) AS revenue", r.cost).
		Where("restaurant = ?", restaurant).
		Scan(ctx, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Visit) CalcPopularDishes(ctx context.Context) ([]*model.DishRanking, error) {
	return r.calcTopDishes(ctx, "orders")
}

func (r *Visit) CalcProfitableDishes(ctx context.Context) ([]*model.DishRanking, error) {
	return r.calcTopDishes(ctx, "revenue")
}

func (r *Visit) calcTopDishes(ctx context.Context, score string) ([]*model.DishRanking, error) {
	subq2 := r.from().
		Column("restaurant", "dish").
		ColumnExpr("COUNT(*) AS orders").
		ColumnExpr("SUM(?) AS revenue", r.cost).
		ColumnExpr("MIN(visit_id) AS first_visit").
		Group("restaurant", "dish")

	subq1 := r.db.NewSelect().
		TableExpr("(?) AS subq2", subq2).
		Column("restaurant", "dish", "orders", "revenue").
		ColumnExpr("ROW_NUMBER() OVER (PARTITION BY restaurant ORDER BY ? DESC, first_visit ASC) AS rn", bun.Ident(score))

	mainq := r.db.NewSelect().
		TableExpr("(?) AS subq1", subq1).
		Column("restaurant", "dish", "orders", "revenue").
		Where("rn = 1")

	results := make([]*model.DishRanking, 0)
	err := r.byRestaurant(mainq).Scan(ctx, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Visit) CalcTopVisitors(ctx context.Context) (*model.TopVisitors, error) {
	perRestaurant, err := r.calcTopVisitorsPerRestaurant(ctx)
	if err != nil {
		return nil, err
	}

	overall, err := r.calcTopVisitorOverall(ctx)
	if err != nil {
		return nil, err
	}

	return &model.TopVisitors{
		PerRestaurant: perRestaurant,
		Overall:       overall,
	}, nil
}

func (r *Visit) calcTopVisitorsPerRestaurant(ctx context.Context) ([]*model.CustomerRanking, error) {
	subq2 := r.from().
		Column("restaurant", "customer").
		ColumnExpr("COUNT(*) AS visits").
		ColumnExpr("MIN(visit_id) AS first_visit").
		Where("customer IS NOT NULL").
		Group("restaurant", "customer")

	subq1 := r.db.NewSelect().
		TableExpr("(?) AS subq2", subq2).
		Column("restaurant", "customer", "visits").
		ColumnExpr("ROW_NUMBER() OVER (PARTITION BY restaurant ORDER BY visits DESC, first_visit ASC) AS rn")

	mainq := r.db.NewSelect().
		TableExpr("(?) AS subq1", subq1).
		Column("restaurant", "customer", "visits").
		Where("rn = 1")

	results := make([]*model.CustomerRanking, 0)
	err := r.byRestaurant(mainq).Scan(ctx, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Visit) calcTopVisitorOverall(ctx context.Context) (*model.TopCustomer, error) {
	var result model.TopCustomer
	err := r.from().
		Column("customer").
		ColumnExpr("COUNT(*) AS visits").
		ColumnExpr("COUNT(DISTINCT restaurant) AS restaurants").
		Where("customer IS NOT NULL").
		Group("customer").
		OrderExpr("visits DESC, MIN(visit_id) ASC").
		Limit(1).
		Scan(ctx, &result)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Visit) ListRestaurants(ctx context.Context) ([]string, error) {
	restaurants := make([]string, 0)
	err := r.byRestaurant(
		r.from().
			Column("restaurant").
			Group("restaurant"),
	).Scan(ctx, &restaurants)
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *Visit) selectVisits(visits *[]*model.Visit) *bun.SelectQuery {
	return r.db.NewSelect().
		Model(visits).
		ModelTableExpr("? AS v", bun.Ident(r.table)).
		Column("visit_id", "restaurant", "customer", "dish").
		ColumnExpr("? AS food_cost", r.cost).
		Order("v.visit_id")
}

func (r *Visit) ListVisits(ctx context.Context, limit, offset int) ([]*model.Visit, error) {
	visits := make([]*model.Visit, 0, limit)
	err := r.selectVisits(&visits).
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *Visit) CountAll(ctx context.Context) (int, error) {
	return r.from().Count(ctx)
}

// ListAllVisits fetches the whole table in visit order, for in-process aggregation.
func (r *Visit) ListAllVisits(ctx context.Context) ([]*model.Visit, error) {
	visits := make([]*model.Visit, 0)
	err := r.selectVisits(&visits).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return visits, nil
}
