package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/constant"
	"github.com/visitstats/dashboard/internal/infra"
	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/apierr"
	"github.com/visitstats/dashboard/internal/pkg/testentry/fixture"
	"github.com/visitstats/dashboard/internal/repo"
)

type services struct {
	conf      *appconfig.Config
	visitRepo *repo.Visit
	insight   *Insight
	browse    *Browse
	dashboard *Dashboard
	health    *Health
}

func newServices(t *testing.T, aggregateIn string, visits []*model.Visit) *services {
	t.Helper()

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		VisitsTable:        "visits",
		Currency:           "USD",
		AggregateIn:        aggregateIn,
		FeaturedRestaurant: fixture.EndOfUniverse,
		QueryTimeout:       5 * time.Second,
	}}

	db, err := infra.OpenSQLite()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, infra.LoadVisits(context.Background(), db, conf.VisitsTable, visits))

	visitRepo, err := repo.NewVisit(db, conf)
	require.NoError(t, err)

	s := &services{conf: conf, visitRepo: visitRepo}
	s.insight = NewInsight(conf, NewCalculator(conf, s.visitRepo))
	s.browse = NewBrowse(s.visitRepo)
	s.dashboard, err = NewDashboard(conf, s.insight, s.browse)
	require.NoError(t, err)
	s.health = NewHealth(s.visitRepo)
	return s
}

func TestNewCalculator(t *testing.T) {
	assert.IsType(t, &DatabaseCalculator{}, newServices(t, appconfig.AggregateInDatabase, nil).insight.Calculator)
	assert.IsType(t, &MemoryCalculator{}, newServices(t, appconfig.AggregateInMemory, nil).insight.Calculator)
}

func TestDashboardEnginesAgree(t *testing.T) {
	tests := []struct {
		name        string
		visits      func() []*model.Visit
		restaurants []string
	}{
		{"fixture", fixture.Visits, []string{"", fixture.BeanJuice, "milliways"}},
		{"price ties", fixture.PriceTieVisits, []string{fixture.Tearoom, fixture.Bakery}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			database := newServices(t, appconfig.AggregateInDatabase, tt.visits())
			memory := newServices(t, appconfig.AggregateInMemory, tt.visits())

			for _, restaurant := range tt.restaurants {
				fromDatabase, err := database.dashboard.Build(ctx, restaurant)
				require.NoError(t, err)
				fromMemory, err := memory.dashboard.Build(ctx, restaurant)
				require.NoError(t, err)

				fromDatabase.GeneratedAt = time.Time{}
				fromMemory.GeneratedAt = time.Time{}
				assert.Equal(t, fromDatabase, fromMemory, restaurant)
			}
		})
	}
}

func TestDashboardPriceTie(t *testing.T) {
	s := newServices(t, appconfig.AggregateInDatabase, fixture.PriceTieVisits())

	dashboard, err := s.dashboard.Build(context.Background(), fixture.Tearoom)
	require.NoError(t, err)
	assert.EqualValues(t, 60, dashboard.Revenue.Revenue)
	require.Len(t, dashboard.ProfitableDishes, 2)
	assert.Equal(t, "soup", dashboard.ProfitableDishes[1].Dish)
}

func TestDashboardBuild(t *testing.T) {
	s := newServices(t, appconfig.AggregateInDatabase, fixture.Visits())

	dashboard, err := s.dashboard.Build(context.Background(), "  ")
	require.NoError(t, err)

	assert.Equal(t, fixture.EndOfUniverse, dashboard.Restaurant)
	assert.Equal(t, []string{fixture.BeanJuice, fixture.Cashew, fixture.EndOfUniverse}, dashboard.Restaurants)
	assert.Equal(t, 6, dashboard.VisitCount.Visits)
	assert.EqualValues(t, 7550, dashboard.Revenue.Revenue)
	assert.Equal(t, "USD", dashboard.Currency)
	assert.EqualValues(t, 2, dashboard.Scale)
	assert.Len(t, dashboard.PopularDishes, 3)
	assert.Len(t, dashboard.ProfitableDishes, 3)
	require.NotNil(t, dashboard.TopVisitors.Overall)
	assert.Equal(t, "Ford", dashboard.TopVisitors.Overall.Customer)
	assert.False(t, dashboard.GeneratedAt.IsZero())
}

func TestDashboardEmptyDataset(t *testing.T) {
	s := newServices(t, appconfig.AggregateInMemory, nil)

	dashboard, err := s.dashboard.Build(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, dashboard.Restaurants)
	assert.Equal(t, 0, dashboard.VisitCount.Visits)
	assert.EqualValues(t, 0, dashboard.Revenue.Revenue)
	assert.Empty(t, dashboard.PopularDishes)
	assert.Nil(t, dashboard.TopVisitors.Overall)
}

func TestInsightValidatesRestaurant(t *testing.T) {
	s := newServices(t, appconfig.AggregateInDatabase, fixture.Visits())
	ctx := context.Background()

	_, err := s.insight.VisitCount(ctx, " ")
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeInvalidRequest, apiErr.ErrorCode)

	long := make([]byte, constant.MaxRestaurantNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = s.insight.Revenue(ctx, string(long))
	require.ErrorAs(t, err, &apiErr)

	count, err := s.insight.VisitCount(ctx, " "+fixture.Cashew+" ")
	require.NoError(t, err)
	assert.Equal(t, fixture.Cashew, count.Restaurant)
	assert.Equal(t, 1, count.Visits)
}

func TestInsightTimeout(t *testing.T) {
	s := newServices(t, appconfig.AggregateInDatabase, fixture.Visits())
	s.conf.QueryTimeout = time.Nanosecond

	_, err := s.insight.TopVisitors(context.Background())
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeUnavailable, apiErr.ErrorCode)
}

func TestBrowsePage(t *testing.T) {
	s := newServices(t, appconfig.AggregateInDatabase, fixture.Visits())
	ctx := context.Background()

	page, err := s.browse.Page(ctx, 0, -3)
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultPageSize, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Visits, 12)
	assert.False(t, page.HasNext())

	page, err = s.browse.Page(ctx, 5, 5)
	require.NoError(t, err)
	assert.Len(t, page.Visits, 5)
	assert.EqualValues(t, 6, page.Visits[0].VisitID)
	assert.True(t, page.HasNext())

	page, err = s.browse.Page(ctx, constant.MaxPageSize+1, 100)
	require.NoError(t, err)
	assert.Equal(t, constant.MaxPageSize, page.Limit)
	assert.Empty(t, page.Visits)
}

func TestHealth(t *testing.T) {
	s := newServices(t, appconfig.AggregateInDatabase, nil)
	assert.NoError(t, s.health.Ping(context.Background()))
}
