package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/carlot/internal/payment"
)

func TestSimulated_Charge(t *testing.T) {
	p := payment.NewSimulated()

	t.Run("Success", func(t *testing.T) {
		res, err := p.Charge(context.Background(), payment.Request{Amount: 36000, VehicleID: "1"})
		require.NoError(t, err)
		assert.Equal(t, payment.StatusSucceeded, res.Status)
		assert.Regexp(t, `^SIM-[0-9a-f]{8}$`, res.Reference)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		_, err := p.Charge(context.Background(), payment.Request{Amount: 0})
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Charge(ctx, payment.Request{Amount: 100})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
