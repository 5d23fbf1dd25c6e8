package model

import "time"

type VisitCount struct {
	Restaurant string `json:"restaurant" bun:"-"`
	// Visits is the number of recorded visits, i.e. rows.
	Visits int `json:"visits" bun:"visits"`
	// UniqueCustomers counts distinct named customers among those visits.
	UniqueCustomers int `json:"uniqueCustomers" bun:"unique_customers"`
}

// Revenue and every other amount is in integer minor units of the configured currency,
// e.g. cents, so that sums and ties are exact.
type Revenue struct {
	Restaurant string `json:"restaurant" bun:"-"`
	Revenue    int64  `json:"revenueMinor" bun:"revenue"`
}

// DishRanking is the winning dish of one restaurant, together with both of its tallies.
type DishRanking struct {
	Restaurant string `json:"restaurant" bun:"restaurant"`
	Dish       string `json:"dish" bun:"dish"`
	Orders     int    `json:"orders" bun:"orders"`
	Revenue    int64  `json:"revenueMinor" bun:"revenue"`
}

type CustomerRanking struct {
	Restaurant string `json:"restaurant" bun:"restaurant"`
	Customer   string `json:"customer" bun:"customer"`
	Visits     int    `json:"visits" bun:"visits"`
}

// TopCustomer is the customer with the highest cumulative visit count across all restaurants.
type TopCustomer struct {
	Customer    string `json:"customer" bun:"customer"`
	Visits      int    `json:"visits" bun:"visits"`
	Restaurants int    `json:"restaurants" bun:"restaurants"`
}

type TopVisitors struct {
	PerRestaurant []*CustomerRanking `json:"perRestaurant"`
	// Overall is nil when no named customer has visited anywhere.
	Overall *TopCustomer `json:"overall"`
}

type Dashboard struct {
	Restaurant       string         `json:"restaurant"`
	// Currency is the ISO 4217 code of every amount; Scale is its number of minor digits.
	Currency         string         `json:"currency"`
	Scale            int32          `json:"scale"`
	Restaurants      []string       `json:"restaurants"`
	VisitCount       *VisitCount    `json:"visitCount"`
	Revenue          *Revenue       `json:"revenue"`
	PopularDishes    []*DishRanking `json:"popularDishes"`
	ProfitableDishes []*DishRanking `json:"profitableDishes"`
	TopVisitors      *TopVisitors   `json:"topVisitors"`
	GeneratedAt      time.Time      `json:"generatedAt"`
}
