package constant

const (
	DefaultPageSize = 50
	MaxPageSize     = 500

	// MaxRestaurantNameLength bounds the restaurant filter accepted from clients.
	MaxRestaurantNameLength = 200
)

// Query names, used as metric labels and log fields.
const (
	QueryVisitCount       = "visit_count"
	QueryRevenue          = "revenue"
	QueryPopularDishes    = "popular_dishes"
	QueryProfitableDishes = "profitable_dishes"
	QueryTopVisitors      = "top_visitors"
)
