package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/money"
	"github.com/visitstats/dashboard/internal/pkg/testentry/fixture"
	"github.com/visitstats/dashboard/internal/util/visitcalc"
)

func TestRender(t *testing.T) {
	visits := fixture.Visits()
	d := &model.Dashboard{
		Restaurant:       fixture.EndOfUniverse,
		VisitCount:       visitcalc.VisitCount(visits, fixture.EndOfUniverse),
		Revenue:          visitcalc.Revenue(visits, fixture.EndOfUniverse),
		PopularDishes:    visitcalc.PopularDishes(visits),
		ProfitableDishes: visitcalc.ProfitableDishes(visits),
		TopVisitors:      visitcalc.TopVisitors(visits),
		GeneratedAt:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	formatter, err := money.NewFormatter("USD", language.English)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d, formatter))

	out := buf.String()
	assert.Contains(t, out, fixture.EndOfUniverse)
	assert.Contains(t, out, "6 visits (3 unique customers)")
	assert.Contains(t, out, "75.50")
	assert.Contains(t, out, "pan galactic gargle blaster")
	assert.Contains(t, out, "babel fish soup")
	assert.Contains(t, out, "Marvin")
	assert.Contains(t, out, "Most visits overall: Ford with 4 visits across 2 restaurants")
	assert.Contains(t, out, "2023-01-01 00:00:00 UTC")
}

func TestRenderEmpty(t *testing.T) {
	d := &model.Dashboard{
		Restaurant:  "milliways",
		VisitCount:  visitcalc.VisitCount(nil, "milliways"),
		Revenue:     visitcalc.Revenue(nil, "milliways"),
		TopVisitors: visitcalc.TopVisitors(nil),
	}
	formatter, err := money.NewFormatter("EUR", language.English)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d, formatter))
	assert.Contains(t, buf.String(), "no named customers recorded")
}
