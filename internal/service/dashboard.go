package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/money"
	"github.com/visitstats/dashboard/internal/pkg/observability"
)

type Dashboard struct {
	Config         *appconfig.Config
	InsightService *Insight
	BrowseService  *Browse

	scale int32
}

func NewDashboard(config *appconfig.Config, insightService *Insight, browseService *Browse) (*Dashboard, error) {
	scale, err := money.Scale(config.Currency)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: invalid currency")
	}
	return &Dashboard{
		Config:         config,
		InsightService: insightService,
		BrowseService:  browseService,
		scale:          scale,
	}, nil
}

// Build answers every dashboard question for restaurant, or for the featured restaurant
// when restaurant is empty. The queries run one after another on fresh data.
func (s *Dashboard) Build(ctx context.Context, restaurant string) (*model.Dashboard, error) {
	start := time.Now()
	defer func() {
		observability.DashboardBuildDuration.Observe(time.Since(start).Seconds())
	}()

	restaurant = strings.TrimSpace(restaurant)
	if restaurant == "" {
		restaurant = s.Config.FeaturedRestaurant
	}

	restaurants, err := s.BrowseService.Restaurants(ctx)
	if err != nil {
		return nil, err
	}

	visitCount, err := s.InsightService.VisitCount(ctx, restaurant)
	if err != nil {
		return nil, err
	}

	revenue, err := s.InsightService.Revenue(ctx, restaurant)
	if err != nil {
		return nil, err
	}

	popularDishes, err := s.InsightService.PopularDishes(ctx)
	if err != nil {
		return nil, err
	}

	profitableDishes, err := s.InsightService.ProfitableDishes(ctx)
	if err != nil {
		return nil, err
	}

	topVisitors, err := s.InsightService.TopVisitors(ctx)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("evt.name", "dashboard.built").
		Str("restaurant", restaurant).
		Dur("elapsed", time.Since(start)).
		Msg("dashboard built")

	return &model.Dashboard{
		Restaurant:       restaurant,
		Currency:         s.Config.Currency,
		Scale:            s.scale,
		Restaurants:      restaurants,
		VisitCount:       visitCount,
		Revenue:          revenue,
		PopularDishes:    popularDishes,
		ProfitableDishes: profitableDishes,
		TopVisitors:      topVisitors,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}
