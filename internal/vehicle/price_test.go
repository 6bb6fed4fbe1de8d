package vehicle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

func TestFormatFullPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{37300, "$37,300"},
		{1250000, "$1,250,000"},
		{-4500, "-$4,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, vehicle.FormatFullPrice(tt.in))
	}
}

func TestFormatCompactPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{950, "$950"},
		{1000, "$1k"},
		{37000, "$37k"},
		{37300, "$37.3k"},
		{37349, "$37.3k"},
		{999960, "$1M"},
		{1250000, "$1.25M"},
		{-37300, "-$37.3k"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, vehicle.FormatCompactPrice(tt.in), "input %d", tt.in)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "Plain", in: "36000", want: 36000},
		{name: "Separators", in: "36,000", want: 36000},
		{name: "Dollar", in: " $37,300 ", want: 37300},
		{name: "Zero", in: "0", want: 0},
		{name: "Empty", in: "", wantErr: true},
		{name: "Letters", in: "abc", wantErr: true},
		{name: "Fraction", in: "36000.50", wantErr: true},
		{name: "Negative", in: "-5", wantErr: true},
		{name: "MaxInt64", in: "9223372036854775807", want: 9223372036854775807},
		{name: "LeadingZeros", in: "000000000000000000000042", want: 42},
		{name: "JustAboveMaxInt64", in: "9223372036854775808", wantErr: true},
		{name: "WrapsToSmall", in: "18446744073709551617", wantErr: true},
		{name: "WrapsWithSeparators", in: "18,446,744,073,709,588,000", wantErr: true},
		{name: "Exponent", in: "1e3", wantErr: true},
		{name: "UpperExponent", in: "1E19", wantErr: true},
		{name: "HugeExponent", in: "1e20000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vehicle.ParsePrice(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, vehicle.ErrInvalidPrice)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePrice_RoundTrip(t *testing.T) {
	for _, x := range []int64{0, 1, 999, 1000, 37300, 123456789} {
		got, err := vehicle.ParsePrice(vehicle.FormatFullPrice(x))
		require.NoError(t, err)
		assert.Equal(t, x, got)
	}
}
