package vehicle

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("invalid price")

var (
	thousand = decimal.NewFromInt(1000)
	maxPrice = decimal.NewFromInt(math.MaxInt64)
)

// maxPriceDigits bounds input before decimal parsing; math.MaxInt64 has 19 digits.
const maxPriceDigits = 19

// FormatFullPrice renders a whole-dollar price with thousands separators, e.g. "$37,300".
func FormatFullPrice(p int64) string {
	if p < 0 {
		return "-$" + humanize.Comma(-p)
	}

	return "$" + humanize.Comma(p)
}

// FormatCompactPrice renders a short form for cards and badges: "$950", "$37.3k", "$1.25M".
func FormatCompactPrice(p int64) string {
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}

	if p < 1000 {
		return sign + "$" + strconv.FormatInt(p, 10)
	}

	k := decimal.NewFromInt(p).Shift(-3).Round(1)
	if k.LessThan(thousand) {
		return sign + "$" + k.String() + "k"
	}

	m := decimal.NewFromInt(p).Shift(-6).Round(2)

	return sign + "$" + m.String() + "M"
}

// ParsePrice reads a whole-dollar amount, tolerating a leading "$" and thousands separators.
// Fractions, negatives, exponents, empty input and values beyond int64 are rejected.
func ParsePrice(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.NewReplacer(",", "", " ", "", "_", "").Replace(clean)

	if clean == "" || strings.ContainsAny(clean, "eE") {
		return 0, ErrInvalidPrice
	}

	whole, _, _ := strings.Cut(strings.TrimLeft(clean, "+-0"), ".")
	if len(whole) > maxPriceDigits {
		return 0, ErrInvalidPrice
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, ErrInvalidPrice
	}

	if d.IsNegative() || !d.IsInteger() || d.GreaterThan(maxPrice) {
		return 0, ErrInvalidPrice
	}

	return d.IntPart(), nil
}
