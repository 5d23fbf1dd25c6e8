// Package money converts food costs between decimal text and integer minor units, and
// formats them for humans.
//
// Amounts are held as int64 counts of the currency's smallest standard unit (cents for
// USD, yen for JPY) so that sums and comparisons are exact.
package money

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrNegative = errors.New("money: negative amount")
	ErrOverflow = errors.New("money: amount out of range")
)

// Scale returns the number of decimals of the currency's standard minor unit.
func Scale(code string) (int32, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, err
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale), nil
}

// ParseMinor parses a non-negative decimal amount such as "12.99" into minor units of the
// given scale. Extra decimals are rounded half away from zero, as SQL ROUND does.
// Non-numeric input, including "inf" and "NaN", is rejected.
func ParseMinor(s string, scale int32) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if d.Sign() < 0 {
		return 0, errors.Wrapf(ErrNegative, "%s", s)
	}
	minor := d.Round(scale).Shift(scale)
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, errors.Wrapf(ErrOverflow, "%s", s)
	}
	return minor.IntPart(), nil
}

// Decimal converts minor units back into an exact decimal amount.
func Decimal(minor int64, scale int32) decimal.Decimal {
	return decimal.New(minor, -scale)
}

// Formatter renders amounts of a single currency for a single locale.
type Formatter struct {
	unit    currency.Unit
	scale   int32
	printer *message.Printer
}

// NewFormatter parses an ISO 4217 currency code. The tag controls digit grouping.
func NewFormatter(code string, tag language.Tag) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, err
	}
	scale, _ := currency.Standard.Rounding(unit)
	return &Formatter{
		unit:    unit,
		scale:   int32(scale),
		printer: message.NewPrinter(tag),
	}, nil
}

// Format renders an amount given in minor units, prefixed with the currency symbol.
func (f *Formatter) Format(minor int64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(Decimal(minor, f.scale).InexactFloat64())))
}

// Code returns the ISO 4217 code.
func (f *Formatter) Code() string {
	return f.unit.String()
}

func (f *Formatter) Scale() int32 {
	return f.scale
}
