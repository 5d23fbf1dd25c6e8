package visitcalc

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/testentry/fixture"
	"github.com/visitstats/dashboard/internal/pkg/visitcsv"
)

func TestVisitCount(t *testing.T) {
	visits := fixture.Visits()

	count := VisitCount(visits, fixture.EndOfUniverse)
	assert.Equal(t, &model.VisitCount{Restaurant: fixture.EndOfUniverse, Visits: 6, UniqueCustomers: 3}, count)

	// the anonymous visit counts as a visit, not as a customer
	count = VisitCount(visits, fixture.BeanJuice)
	assert.Equal(t, 5, count.Visits)
	assert.Equal(t, 2, count.UniqueCustomers)

	count = VisitCount(visits, "milliways")
	assert.Equal(t, 0, count.Visits)
	assert.Equal(t, 0, count.UniqueCustomers)
}

func TestRevenue(t *testing.T) {
	visits := fixture.Visits()

	assert.EqualValues(t, 7550, Revenue(visits, fixture.EndOfUniverse).Revenue)
	assert.EqualValues(t, 2400, Revenue(visits, fixture.BeanJuice).Revenue)
	assert.EqualValues(t, 0, Revenue(visits, "milliways").Revenue)
}

func TestPopularDishes(t *testing.T) {
	assert.Equal(t, []*model.DishRanking{
		{Restaurant: fixture.BeanJuice, Dish: "latte", Orders: 2, Revenue: 900},
		{Restaurant: fixture.Cashew, Dish: "cashew", Orders: 1, Revenue: 125},
		{Restaurant: fixture.EndOfUniverse, Dish: "pan galactic gargle blaster", Orders: 2, Revenue: 2100},
	}, PopularDishes(fixture.Visits()))
}

func TestProfitableDishes(t *testing.T) {
	assert.Equal(t, []*model.DishRanking{
		// latte and mocha both earned 9.00; latte was ordered first
		{Restaurant: fixture.BeanJuice, Dish: "latte", Orders: 2, Revenue: 900},
		{Restaurant: fixture.Cashew, Dish: "cashew", Orders: 1, Revenue: 125},
		{Restaurant: fixture.EndOfUniverse, Dish: "babel fish soup", Orders: 2, Revenue: 5050},
	}, ProfitableDishes(fixture.Visits()))
}

// 0.30 against 0.10 + 0.20 is a tie, so the dish served first wins.
func TestProfitableDishesPriceTie(t *testing.T) {
	want := []*model.DishRanking{
		{Restaurant: fixture.Bakery, Dish: "cake", Orders: 1, Revenue: 1299},
		{Restaurant: fixture.Tearoom, Dish: "soup", Orders: 1, Revenue: 30},
	}
	assert.Equal(t, want, ProfitableDishes(fixture.PriceTieVisits()))

	decoded, err := visitcsv.Decode(bytes.NewReader(fixture.CSVOf(fixture.PriceTieVisits())), fixture.Scale)
	require.NoError(t, err)
	assert.Equal(t, fixture.PriceTieVisits(), decoded)
	assert.Equal(t, want, ProfitableDishes(decoded))

	assert.Equal(t, []*model.DishRanking{
		{Restaurant: fixture.Bakery, Dish: "pie", Orders: 3, Revenue: 1299},
		{Restaurant: fixture.Tearoom, Dish: "tea", Orders: 2, Revenue: 30},
	}, PopularDishes(decoded))
}

func TestTopVisitors(t *testing.T) {
	top := TopVisitors(fixture.Visits())

	assert.Equal(t, []*model.CustomerRanking{
		{Restaurant: fixture.BeanJuice, Customer: "Ford", Visits: 2},
		{Restaurant: fixture.Cashew, Customer: "Marvin", Visits: 1},
		{Restaurant: fixture.EndOfUniverse, Customer: "Arthur", Visits: 3},
	}, top.PerRestaurant)
	assert.Equal(t, &model.TopCustomer{Customer: "Ford", Visits: 4, Restaurants: 2}, top.Overall)
}

func TestTopVisitorsOverallTie(t *testing.T) {
	visits := []*model.Visit{
		{VisitID: 1, Restaurant: "a", Customer: null.StringFrom("zed"), Dish: "x", FoodCost: 1},
		{VisitID: 2, Restaurant: "b", Customer: null.StringFrom("amy"), Dish: "x", FoodCost: 1},
		{VisitID: 3, Restaurant: "b", Customer: null.StringFrom("zed"), Dish: "x", FoodCost: 1},
		{VisitID: 4, Restaurant: "a", Customer: null.StringFrom("amy"), Dish: "x", FoodCost: 1},
	}

	top := TopVisitors(visits)
	require.NotNil(t, top.Overall)
	assert.Equal(t, "zed", top.Overall.Customer)
	assert.Equal(t, 2, top.Overall.Visits)
	assert.Equal(t, 2, top.Overall.Restaurants)
}

func TestEmptyDataset(t *testing.T) {
	assert.Empty(t, PopularDishes(nil))
	assert.Empty(t, ProfitableDishes(nil))

	top := TopVisitors(nil)
	assert.Empty(t, top.PerRestaurant)
	assert.Nil(t, top.Overall)

	anonymous := []*model.Visit{{VisitID: 1, Restaurant: "a", Dish: "x", FoodCost: 1}}
	top = TopVisitors(anonymous)
	assert.Empty(t, top.PerRestaurant)
	assert.Nil(t, top.Overall)
}

func TestInputOrderDoesNotMatter(t *testing.T) {
	visits := fixture.Visits()
	shuffled := fixture.Visits()
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assert.Equal(t, PopularDishes(visits), PopularDishes(shuffled))
	assert.Equal(t, ProfitableDishes(visits), ProfitableDishes(shuffled))
	assert.Equal(t, TopVisitors(visits), TopVisitors(shuffled))
}

func TestIdempotent(t *testing.T) {
	visits := fixture.Visits()
	assert.Equal(t, TopVisitors(visits), TopVisitors(visits))
	assert.Equal(t, VisitCount(visits, fixture.BeanJuice), VisitCount(visits, fixture.BeanJuice))
}
