// Package visitcalc computes visit aggregates over rows already held in memory.
//
// Every ranking picks, inside each restaurant, the candidate with the highest tally. Ties go
// to the candidate seen first, i.e. the one with the smallest visit id. Results are ordered
// by restaurant name. Visits without a customer are counted as visits but never ranked as
// customers.
package visitcalc

import (
	"sort"

	"github.com/samber/lo"

	"github.com/visitstats/dashboard/internal/model"
)

type tally struct {
	key   string
	first int64
	count int
	sum   int64
}

func (t *tally) add(v *model.Visit) {
	t.count++
	t.sum += v.FoodCost
	if v.VisitID < t.first {
		t.first = v.VisitID
	}
}

// group keeps tallies in first-occurrence order.
type group struct {
	order []*tally
	index map[string]*tally
}

func (g *group) add(key string, v *model.Visit) {
	t, ok := g.index[key]
	if !ok {
		t = &tally{key: key, first: v.VisitID}
		g.index[key] = t
		g.order = append(g.order, t)
	}
	t.add(v)
}

// top returns the tally with the highest score, the earliest one among equals.
func (g *group) top(score func(t *tally) int64) *tally {
	var best *tally
	for _, t := range g.order {
		if best == nil || score(t) > score(best) || (score(t) == score(best) && t.first < best.first) {
			best = t
		}
	}
	return best
}

type keyFunc func(v *model.Visit) (string, bool)

func byRestaurant(v *model.Visit) (string, bool) { return v.Restaurant, true }
func byDish(v *model.Visit) (string, bool)       { return v.Dish, true }
func byCustomer(v *model.Visit) (string, bool)   { return v.Customer.String, v.Customer.Valid }

// groupBy tallies visits per inner key within each outer key. Visits are walked in
// visit id order so that first occurrence is well defined regardless of input order.
func groupBy(visits []*model.Visit, outer, inner keyFunc) map[string]*group {
	ordered := make([]*model.Visit, len(visits))
	copy(ordered, visits)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].VisitID < ordered[j].VisitID })

	groups := make(map[string]*group)
	for _, v := range ordered {
		outerKey, valid := outer(v)
		if !valid {
			continue
		}
		innerKey, valid := inner(v)
		if !valid {
			continue
		}
		g, exists := groups[outerKey]
		if !exists {
			g = &group{index: make(map[string]*tally)}
			groups[outerKey] = g
		}
		g.add(innerKey, v)
	}
	return groups
}

func sortedKeys(groups map[string]*group) []string {
	keys := lo.Keys(groups)
	sort.Strings(keys)
	return keys
}

func byCount(t *tally) int64 { return int64(t.count) }
func bySum(t *tally) int64   { return t.sum }

func filterRestaurant(visits []*model.Visit, restaurant string) []*model.Visit {
	return lo.Filter(visits, func(v *model.Visit, _ int) bool {
		return v.Restaurant == restaurant
	})
}

// VisitCount counts the visits of one restaurant and the distinct named customers among them.
func VisitCount(visits []*model.Visit, restaurant string) *model.VisitCount {
	matched := filterRestaurant(visits, restaurant)
	customers := lo.Uniq(lo.FilterMap(matched, func(v *model.Visit, _ int) (string, bool) {
		return byCustomer(v)
	}))
	return &model.VisitCount{
		Restaurant:      restaurant,
		Visits:          len(matched),
		UniqueCustomers: len(customers),
	}
}

// Revenue sums the food cost of one restaurant's visits, in minor units.
func Revenue(visits []*model.Visit, restaurant string) *model.Revenue {
	return &model.Revenue{
		Restaurant: restaurant,
		Revenue: lo.SumBy(filterRestaurant(visits, restaurant), func(v *model.Visit) int64 {
			return v.FoodCost
		}),
	}
}

func rankDishes(visits []*model.Visit, score func(t *tally) int64) []*model.DishRanking {
	groups := groupBy(visits, byRestaurant, byDish)
	results := make([]*model.DishRanking, 0, len(groups))
	for _, restaurant := range sortedKeys(groups) {
		best := groups[restaurant].top(score)
		results = append(results, &model.DishRanking{
			Restaurant: restaurant,
			Dish:       best.key,
			Orders:     best.count,
			Revenue:    best.sum,
		})
	}
	return results
}

// PopularDishes picks the most ordered dish of every restaurant.
func PopularDishes(visits []*model.Visit) []*model.DishRanking {
	return rankDishes(visits, byCount)
}

// ProfitableDishes picks the dish with the highest summed food cost of every restaurant.
func ProfitableDishes(visits []*model.Visit) []*model.DishRanking {
	return rankDishes(visits, bySum)
}

// TopVisitors picks the most frequent customer of every restaurant, and the customer with
// the highest cumulative visit count overall.
func TopVisitors(visits []*model.Visit) *model.TopVisitors {
	groups := groupBy(visits, byRestaurant, byCustomer)
	perRestaurant := make([]*model.CustomerRanking, 0, len(groups))
	for _, restaurant := range sortedKeys(groups) {
		best := groups[restaurant].top(byCount)
		perRestaurant = append(perRestaurant, &model.CustomerRanking{
			Restaurant: restaurant,
			Customer:   best.key,
			Visits:     best.count,
		})
	}

	everywhere := func(*model.Visit) (string, bool) { return "", true }
	overall := groupBy(visits, everywhere, byCustomer)[""]

	result := &model.TopVisitors{PerRestaurant: perRestaurant}
	if overall == nil {
		return result
	}

	best := overall.top(byCount)
	restaurants := lo.Uniq(lo.FilterMap(visits, func(v *model.Visit, _ int) (string, bool) {
		return v.Restaurant, v.Customer.Valid && v.Customer.String == best.key
	}))
	result.Overall = &model.TopCustomer{
		Customer:    best.key,
		Visits:      best.count,
		Restaurants: len(restaurants),
	}
	return result
}
