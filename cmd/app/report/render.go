package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/money"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
	headStyle = cellStyle.Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// Render writes the dashboard as terminal tables.
func Render(w io.Writer, d *model.Dashboard, formatter *money.Formatter) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("visitstats · " + d.Restaurant))
	b.WriteString("\n")

	scalars := newTable("Question", "Answer").
		Row("Customers visited", fmt.Sprintf("%d visits (%d unique customers)", d.VisitCount.Visits, d.VisitCount.UniqueCustomers)).
		Row("Revenue", formatter.Format(d.Revenue.Revenue))
	b.WriteString(scalars.String())
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Most popular dish per restaurant"))
	b.WriteString("\n")
	popular := newTable("Restaurant", "Dish", "Orders", "Revenue")
	for _, r := range d.PopularDishes {
		popular.Row(r.Restaurant, r.Dish, strconv.Itoa(r.Orders), formatter.Format(r.Revenue))
	}
	b.WriteString(popular.String())
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Most profitable dish per restaurant"))
	b.WriteString("\n")
	profitable := newTable("Restaurant", "Dish", "Revenue", "Orders")
	for _, r := range d.ProfitableDishes {
		profitable.Row(r.Restaurant, r.Dish, formatter.Format(r.Revenue), strconv.Itoa(r.Orders))
	}
	b.WriteString(profitable.String())
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Top visitor per restaurant"))
	b.WriteString("\n")
	visitors := newTable("Restaurant", "Customer", "Visits")
	for _, r := range d.TopVisitors.PerRestaurant {
		visitors.Row(r.Restaurant, r.Customer, strconv.Itoa(r.Visits))
	}
	b.WriteString(visitors.String())
	b.WriteString("\n\n")

	if o := d.TopVisitors.Overall; o != nil {
		fmt.Fprintf(&b, "Most visits overall: %s with %d visits across %d restaurants\n", o.Customer, o.Visits, o.Restaurants)
	} else {
		b.WriteString("Most visits overall: no named customers recorded\n")
	}
	b.WriteString(mutedStyle.Render("generated at " + d.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
