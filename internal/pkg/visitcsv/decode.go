// Package visitcsv decodes visit exports into model.Visit rows.
package visitcsv

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/pkg/money"
)

var ErrEmpty = errors.New("visitcsv: no header row")

const (
	colRestaurant = "restaurant"
	colCustomer   = "customer"
	colDish       = "dish"
	colFoodCost   = "food_cost"
)

// aliases maps every accepted header to its column. Exports from the booking system name
// columns after the dataframe they came from, hence the plural forms.
var aliases = map[string]string{
	"restaurant":       colRestaurant,
	"restaurant_names": colRestaurant,
	"restaurant_name":  colRestaurant,
	"customer":         colCustomer,
	"customer_name":    colCustomer,
	"first_name":       colCustomer,
	"dish":             colDish,
	"food_name":        colDish,
	"food_names":       colDish,
	"food_cost":        colFoodCost,
	"cost":             colFoodCost,
}

var required = []string{colRestaurant, colDish, colFoodCost}

// LineError locates a malformed record. Line is 1-based and counts the header.
type LineError struct {
	Line   int
	Column string
	Err    error
}

func (e *LineError) Error() string {
	if e.Column == "" {
		return "visitcsv: line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
	}
	return "visitcsv: line " + strconv.Itoa(e.Line) + ": column " + e.Column + ": " + e.Err.Error()
}

func (e *LineError) Unwrap() error { return e.Err }

// Decode reads a header row followed by one visit per record. VisitID is assigned from the
// 1-based record number so that file order decides first occurrence. Unknown columns are
// ignored; an empty or missing customer cell decodes as an anonymous visit. Costs are
// decimal text converted into minor units with scale decimals.
func Decode(r io.Reader, scale int32) ([]*model.Visit, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, errors.Wrap(err, "visitcsv: failed to read header")
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	visits := make([]*model.Visit, 0, 1024)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "visitcsv: failed to read record")
		}

		line, _ := reader.FieldPos(0)
		visit, err := decodeRecord(record, index, line, scale)
		if err != nil {
			return nil, err
		}
		visit.VisitID = int64(len(visits) + 1)
		visits = append(visits, visit)
	}

	return visits, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(required)+1)
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		col, ok := aliases[name]
		if !ok {
			continue
		}
		if _, dup := index[col]; dup {
			return nil, &LineError{Line: 1, Column: name, Err: errors.Errorf("duplicate %s column", col)}
		}
		index[col] = i
	}

	missing := lo.Filter(required, func(col string, _ int) bool {
		_, ok := index[col]
		return !ok
	})
	if len(missing) > 0 {
		return nil, &LineError{Line: 1, Err: errors.Errorf("missing required columns: %s", strings.Join(missing, ", "))}
	}

	return index, nil
}

func decodeRecord(record []string, index map[string]int, line int, scale int32) (*model.Visit, error) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	restaurant := cell(colRestaurant)
	if restaurant == "" {
		return nil, &LineError{Line: line, Column: colRestaurant, Err: errors.New("empty value")}
	}
	dish := cell(colDish)
	if dish == "" {
		return nil, &LineError{Line: line, Column: colDish, Err: errors.New("empty value")}
	}

	cost, err := money.ParseMinor(cell(colFoodCost), scale)
	if err != nil {
		return nil, &LineError{Line: line, Column: colFoodCost, Err: err}
	}

	customer := cell(colCustomer)
	return &model.Visit{
		Restaurant: restaurant,
		Customer:   null.NewString(customer, customer != ""),
		Dish:       dish,
		FoodCost:   cost,
	}, nil
}
