// Package fixture holds small visits datasets shared by package tests.
package fixture

import (
	"bytes"
	"encoding/csv"

	"gopkg.in/guregu/null.v3"

	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/money"
)

const (
	EndOfUniverse = "the-restaurant-at-the-end-of-the-universe"
	BeanJuice     = "bean-juice-stand"
	Cashew        = "johnnys-cashew-stand"

	Tearoom = "tearoom"
	Bakery  = "bakery"
)

// Scale is the number of minor digits the fixture costs are written with (USD).
const Scale = 2

type row struct {
	restaurant, customer, dish string
	cents                      int64
}

func build(rows []row) []*model.Visit {
	visits := make([]*model.Visit, 0, len(rows))
	for i, r := range rows {
		visits = append(visits, &model.Visit{
			VisitID:    int64(i + 1),
			Restaurant: r.restaurant,
			Customer:   null.NewString(r.customer, r.customer != ""),
			Dish:       r.dish,
			FoodCost:   r.cents,
		})
	}
	return visits
}

// Visits returns a small dataset exercising every tie-breaking path:
//
//   - EndOfUniverse: three dishes with two orders each, the first served wins popularity
//   - BeanJuice: latte and mocha share the highest revenue; Ford and Trillian visit twice each;
//     one anonymous visit
//   - overall, Ford has the most visits (4) across two restaurants
func Visits() []*model.Visit {
	return build([]row{
		{EndOfUniverse, "Arthur", "pan galactic gargle blaster", 1050},
		{EndOfUniverse, "Ford", "pan galactic gargle blaster", 1050},
		{EndOfUniverse, "Arthur", "babel fish soup", 2525},
		{EndOfUniverse, "Zaphod", "babel fish soup", 2525},
		{EndOfUniverse, "Arthur", "tea", 200},
		{BeanJuice, "Ford", "latte", 450},
		{BeanJuice, "Trillian", "espresso", 300},
		{BeanJuice, "Trillian", "espresso", 300},
		{BeanJuice, "Ford", "latte", 450},
		{BeanJuice, "", "mocha", 900},
		{Cashew, "Marvin", "cashew", 125},
		{EndOfUniverse, "Ford", "tea", 200},
	})
}

// PriceTieVisits returns revenue ties that only hold when cents are summed exactly:
//
//   - Tearoom: soup sells once at 0.30, tea twice at 0.10 and 0.20; soup is served first
//   - Bakery: cake sells once at 12.99, pie three times at 4.33; cake is served first
func PriceTieVisits() []*model.Visit {
	return build([]row{
		{Tearoom, "Arthur", "soup", 30},
		{Tearoom, "Ford", "tea", 10},
		{Tearoom, "Ford", "tea", 20},
		{Bakery, "Trillian", "cake", 1299},
		{Bakery, "Marvin", "pie", 433},
		{Bakery, "Marvin", "pie", 433},
		{Bakery, "Zaphod", "pie", 433},
	})
}

// CSV renders Visits in the export layout accepted by visitcsv.Decode.
func CSV() []byte {
	return CSVOf(Visits())
}

// CSVOf renders visits in the export layout, costs as plain decimals such as "0.1".
func CSVOf(visits []*model.Visit) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"restaurant_names", "first_name", "food_names", "food_cost"})
	for _, v := range visits {
		_ = w.Write([]string{v.Restaurant, v.Customer.String, v.Dish, money.Decimal(v.FoodCost, Scale).String()})
	}
	w.Flush()
	return buf.Bytes()
}
