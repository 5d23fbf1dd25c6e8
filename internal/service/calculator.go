package service

import (
	"context"

	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/repo"
	"github.com/visitstats/dashboard/internal/util/visitcalc"
)

// Calculator answers the five dashboard questions. Implementations differ only in where the
// aggregation happens and must agree on every dataset.
type Calculator interface {
	// Engine names the implementation in metrics and logs.
	Engine() string

	VisitCount(ctx context.Context, restaurant string) (*model.VisitCount, error)
	Revenue(ctx context.Context, restaurant string) (*model.Revenue, error)
	PopularDishes(ctx context.Context) ([]*model.DishRanking, error)
	ProfitableDishes(ctx context.Context) ([]*model.DishRanking, error)
	TopVisitors(ctx context.Context) (*model.TopVisitors, error)
}

func NewCalculator(conf *appconfig.Config, visitRepo *repo.Visit) Calculator {
	if conf.AggregateIn == appconfig.AggregateInMemory {
		return &MemoryCalculator{VisitRepo: visitRepo}
	}
	return &DatabaseCalculator{VisitRepo: visitRepo}
}

// DatabaseCalculator pushes every aggregate down to SQL.
type DatabaseCalculator struct {
	VisitRepo *repo.Visit
}

func (c *DatabaseCalculator) Engine() string { return appconfig.AggregateInDatabase }

func (c *DatabaseCalculator) VisitCount(ctx context.Context, restaurant string) (*model.VisitCount, error) {
	return c.VisitRepo.CalcVisitCount(ctx, restaurant)
}

func (c *DatabaseCalculator) Revenue(ctx context.Context, restaurant string) (*model.Revenue, error) {
	return c.VisitRepo.CalcRevenue(ctx, restaurant)
}

func (c *DatabaseCalculator) PopularDishes(ctx context.Context) ([]*model.DishRanking, error) {
	return c.VisitRepo.CalcPopularDishes(ctx)
}

func (c *DatabaseCalculator) ProfitableDishes(ctx context.Context) ([]*model.DishRanking, error) {
	return c.VisitRepo.CalcProfitableDishes(ctx)
}

func (c *DatabaseCalculator) TopVisitors(ctx context.Context) (*model.TopVisitors, error) {
	return c.VisitRepo.CalcTopVisitors(ctx)
}

// MemoryCalculator fetches the whole table on every call and aggregates in-process.
type MemoryCalculator struct {
	VisitRepo *repo.Visit
}

func (c *MemoryCalculator) Engine() string { return appconfig.AggregateInMemory }

func (c *MemoryCalculator) VisitCount(ctx context.Context, restaurant string) (*model.VisitCount, error) {
	visits, err := c.VisitRepo.ListAllVisits(ctx)
	if err != nil {
		return nil, err
	}
	return visitcalc.VisitCount(visits, restaurant), nil
}

func (c *MemoryCalculator) Revenue(ctx context.Context, restaurant string) (*model.Revenue, error) {
	visits, err := c.VisitRepo.ListAllVisits(ctx)
	if err != nil {
		return nil, err
	}
	return visitcalc.Revenue(visits, restaurant), nil
}

func (c *MemoryCalculator) PopularDishes(ctx context.Context) ([]*model.DishRanking, error) {
	visits, err := c.VisitRepo.ListAllVisits(ctx)
	if err != nil {
		return nil, err
	}
	return visitcalc.PopularDishes(visits), nil
}

func (c *MemoryCalculator) ProfitableDishes(ctx context.Context) ([]*model.DishRanking, error) {
	visits, err := c.VisitRepo.ListAllVisits(ctx)
	if err != nil {
		return nil, err
	}
	return visitcalc.ProfitableDishes(visits), nil
}

func (c *MemoryCalculator) TopVisitors(ctx context.Context) (*model.TopVisitors, error) {
	visits, err := c.VisitRepo.ListAllVisits(ctx)
	if err != nil {
		return nil, err
	}
	return visitcalc.TopVisitors(visits), nil
}
