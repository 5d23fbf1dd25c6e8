package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Visit is one customer's single order at one restaurant. Rows are owned by the source
// database and never written by the dashboard.
type Visit struct {
	bun.BaseModel `bun:"table:visits,alias:v"`

	// VisitID orders visits; the smallest id of a group is its first occurrence.
	VisitID    int64       `bun:"visit_id,pk" json:"visitId"`
	Restaurant string      `bun:"restaurant,notnull" json:"restaurant"`
	Customer   null.String `bun:"customer,type:varchar" json:"customer" swaggertype:"string"`
	Dish       string      `bun:"dish,notnull" json:"dish"`
	// FoodCost is in minor units of the configured currency.
	FoodCost   int64       `bun:"food_cost,notnull" json:"foodCostMinor"`
}

type VisitPage struct {
	Visits []*Visit `json:"visits"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}

// HasNext reports whether rows exist past this page.
func (p *VisitPage) HasNext() bool {
	return p.Offset+len(p.Visits) < p.Total
}
