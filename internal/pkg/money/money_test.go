package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormatter(t *testing.T) {
	usd, err := NewFormatter("USD", language.English)
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.Code())
	assert.EqualValues(t, 2, usd.Scale())
	assert.Contains(t, usd.Format(1250), "12.50")
	assert.Contains(t, usd.Format(1299), "12.99")

	jpy, err := NewFormatter("JPY", language.English)
	require.NoError(t, err)
	assert.EqualValues(t, 0, jpy.Scale())
	assert.Contains(t, jpy.Format(13), "13")
	assert.NotContains(t, jpy.Format(13), ".")
}

func TestNewFormatterRejectsUnknownCode(t *testing.T) {
	_, err := NewFormatter("XYZW", language.English)
	assert.Error(t, err)

	_, err = Scale("XYZW")
	assert.Error(t, err)
}

func TestParseMinor(t *testing.T) {
	tests := []struct {
		in    string
		scale int32
		want  int64
	}{
		{"12.99", 2, 1299},
		{"0.1", 2, 10},
		{"0.2", 2, 20},
		{"4.5", 2, 450},
		{"12", 2, 1200},
		{"10.125", 2, 1013},
		{"10.124", 2, 1012},
		{"2.5", 0, 3},
		{"1e2", 2, 10000},
		{"0", 2, 0},
	}
	for _, tt := range tests {
		got, err := ParseMinor(tt.in, tt.scale)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseMinorSumsExactly(t *testing.T) {
	a, err := ParseMinor("0.1", 2)
	require.NoError(t, err)
	b, err := ParseMinor("0.2", 2)
	require.NoError(t, err)
	c, err := ParseMinor("0.3", 2)
	require.NoError(t, err)
	assert.Equal(t, c, a+b)
}

func TestParseMinorRejects(t *testing.T) {
	for _, in := range []string{"", "two", "inf", "+Inf", "-inf", "NaN", "nan", "1e400", "99999999999999999999"} {
		_, err := ParseMinor(in, 2)
		assert.Error(t, err, in)
	}

	_, err := ParseMinor("-2", 2)
	assert.ErrorIs(t, err, ErrNegative)

	_, err = ParseMinor("1e400", 2)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, "0.30", Decimal(30, 2).StringFixed(2))
	assert.Equal(t, "75.5", Decimal(7550, 2).String())
}
