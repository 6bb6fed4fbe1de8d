package negotiation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/carlot/internal/payment"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

func TestConversation_FiredTasksAreReleased(t *testing.T) {
	q := NewQueue()
	cfg := Config{MaxRounds: 2, ResponseDelay: time.Second, FollowUpDelay: time.Second}
	c := New(vehicle.Default().Get("1"), cfg, q, payment.NewSimulated())

	for range 3 {
		_, err := c.SubmitOffer(RoleBuyer, "30000", "")
		require.NoError(t, err)
	}

	c.mu.Lock()
	assert.Len(t, c.tasks, 3)
	c.mu.Unlock()

	assert.Equal(t, 3, q.Advance(time.Second))

	c.mu.Lock()
	assert.Empty(t, c.tasks)
	c.mu.Unlock()

	_, err := c.SubmitOffer(RoleBuyer, "31000", "")
	require.NoError(t, err)

	c.Close()
	assert.Equal(t, 0, q.Pending())
}
