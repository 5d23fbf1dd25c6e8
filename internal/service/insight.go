package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/constant"
	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/apierr"
	"github.com/visitstats/dashboard/internal/pkg/observability"
)

// Insight runs the dashboard queries through the configured Calculator, bounding each by the
// query timeout and recording its duration.
type Insight struct {
	Config     *appconfig.Config
	Calculator Calculator
}

func NewInsight(config *appconfig.Config, calculator Calculator) *Insight {
	return &Insight{
		Config:     config,
		Calculator: calculator,
	}
}

func (s *Insight) VisitCount(ctx context.Context, restaurant string) (*model.VisitCount, error) {
	restaurant, err := normalizeRestaurant(restaurant)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s, constant.QueryVisitCount, func(ctx context.Context) (*model.VisitCount, error) {
		return s.Calculator.VisitCount(ctx, restaurant)
	})
}

func (s *Insight) Revenue(ctx context.Context, restaurant string) (*model.Revenue, error) {
	restaurant, err := normalizeRestaurant(restaurant)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s, constant.QueryRevenue, func(ctx context.Context) (*model.Revenue, error) {
		return s.Calculator.Revenue(ctx, restaurant)
	})
}

func (s *Insight) PopularDishes(ctx context.Context) ([]*model.DishRanking, error) {
	return observe(ctx, s, constant.QueryPopularDishes, s.Calculator.PopularDishes)
}

func (s *Insight) ProfitableDishes(ctx context.Context) ([]*model.DishRanking, error) {
	return observe(ctx, s, constant.QueryProfitableDishes, s.Calculator.ProfitableDishes)
}

func (s *Insight) TopVisitors(ctx context.Context) (*model.TopVisitors, error) {
	return observe(ctx, s, constant.QueryTopVisitors, s.Calculator.TopVisitors)
}

func normalizeRestaurant(restaurant string) (string, error) {
	restaurant = strings.TrimSpace(restaurant)
	if restaurant == "" {
		return "", apierr.ErrInvalidReq.Msg("restaurant is required")
	}
	if len(restaurant) > constant.MaxRestaurantNameLength {
		return "", apierr.ErrInvalidReq.Msg("restaurant name is too long")
	}
	return restaurant, nil
}

func observe[T any](ctx context.Context, s *Insight, query string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Config.QueryTimeout)
	defer cancel()

	engine := s.Calculator.Engine()
	start := time.Now()
	result, err := fn(ctx)
	elapsed := time.Since(start)

	observability.QueryDuration.WithLabelValues(query, engine).Observe(elapsed.Seconds())

	if err != nil {
		observability.QueryErrors.WithLabelValues(query, engine).Inc()
		log.Error().
			Err(err).
			Str("evt.name", "insight.query.failed").
			Str("query", query).
			Str("engine", engine).
			Dur("elapsed", elapsed).
			Msg("aggregate query failed")

		var zero T
		if errors.Is(err, context.DeadlineExceeded) {
			return zero, apierr.ErrUnavailable.Msg("query %s timed out after %s", query, s.Config.QueryTimeout)
		}
		return zero, errors.Wrapf(err, "insight: %s", query)
	}

	log.Trace().
		Str("evt.name", "insight.query.done").
		Str("query", query).
		Str("engine", engine).
		Dur("elapsed", elapsed).
		Msg("aggregate query done")

	return result, nil
}
