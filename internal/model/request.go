package model

type RestaurantQuery struct {
	Restaurant string `query:"restaurant" validate:"required,max=200,printabletrimmed"`
}

// DashboardQuery leaves Restaurant optional; the featured restaurant is used when empty.
type DashboardQuery struct {
	Restaurant string `query:"restaurant" validate:"omitempty,max=200,printabletrimmed"`
}

type PageQuery struct {
	Limit  int `query:"limit" validate:"min=0,max=500"`
	Offset int `query:"offset" validate:"min=0"`
}

// WebPageQuery is 1-based; 0 is read as the first page. The upper bound keeps the derived
// offset (Page-1)*DefaultPageSize far from overflowing.
type WebPageQuery struct {
	Page int `query:"page" validate:"min=0,max=1000000"`
}
