package negotiation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/carlot/internal/negotiation"
)

func TestParseOfferAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "36000", want: 36000},
		{in: "36,000", want: 36000},
		{in: "$36,000", want: 36000},
		{in: " 35 500 ", want: 35500},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "36000.50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := negotiation.ParseOfferAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, negotiation.ErrInvalidAmount)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
