package view

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/carlot/internal/inbox"
	"github.com/MrJamesThe3rd/carlot/internal/listing"
	"github.com/MrJamesThe3rd/carlot/internal/navigation"
	"github.com/MrJamesThe3rd/carlot/internal/negotiation"
	"github.com/MrJamesThe3rd/carlot/internal/payment"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

func TestDealStatus(t *testing.T) {
	tests := []struct {
		name  string
		types []negotiation.Type
		want  inbox.DealStatus
	}{
		{name: "CardOnly", types: []negotiation.Type{negotiation.TypeVehicleCard}, want: inbox.DealActive},
		{name: "Offer", types: []negotiation.Type{negotiation.TypeVehicleCard, negotiation.TypeOffer}, want: inbox.DealNegotiating},
		{name: "Declined", types: []negotiation.Type{negotiation.TypeOffer, negotiation.TypeOfferDeclined}, want: inbox.DealNegotiating},
		{name: "Accepted", types: []negotiation.Type{negotiation.TypeOffer, negotiation.TypeOfferAccepted}, want: inbox.DealAccepted},
		{name: "Paid", types: []negotiation.Type{negotiation.TypePurchaseRequest, negotiation.TypePurchaseConfirmed, negotiation.TypePaymentComplete, negotiation.TypeText}, want: inbox.DealCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := make([]negotiation.Message, len(tt.types))
			for i, typ := range tt.types {
				msgs[i] = negotiation.Message{Type: typ}
			}

			assert.Equal(t, tt.want, dealStatus(msgs))
		})
	}
}

func TestNextFilter(t *testing.T) {
	var f *listing.Status

	seen := make([]string, 0, 4)
	for range 4 {
		f = nextFilter(f)
		if f == nil {
			seen = append(seen, "all")
			continue
		}

		seen = append(seen, string(*f))
	}

	assert.Equal(t, []string{"available", "pending", "sold", "all"}, seen)
}

func TestChats_OpenReusesConversation(t *testing.T) {
	q := negotiation.NewQueue()
	chats := NewChats(vehicle.Default(), negotiation.DefaultConfig(), q, payment.NewSimulated())

	p := navigation.ChatParams{ConversationID: uuid.New(), VehicleID: "1", DealerName: "Westside Motors"}

	first := chats.Open(p)
	_, err := first.SubmitOffer(negotiation.RoleBuyer, "36000", "")
	require.NoError(t, err)

	again := chats.Open(p)
	assert.Same(t, first, again)
	assert.Len(t, again.Messages(), 2)

	other := chats.Open(navigation.ChatParams{ConversationID: uuid.New(), VehicleID: "1"})
	assert.NotSame(t, first, other)
}

func TestChatModel_SyncTouchesInbox(t *testing.T) {
	id := uuid.New()
	in := inbox.New([]inbox.Summary{{ID: id, DealerName: "Westside Motors", VehicleID: "1", Status: inbox.DealActive, UnreadCount: 2, UpdatedAt: time.Now().Add(-time.Hour)}})

	conv := negotiation.New(vehicle.Default().Get("1"), negotiation.DefaultConfig(), negotiation.NewQueue(), payment.NewSimulated())
	m := NewChatModel(conv, id, in)
	m.Init()

	got, _ := in.Get(id)
	assert.Zero(t, got.UnreadCount)
	assert.Equal(t, inbox.DealActive, got.Status)

	_, err := conv.SubmitOffer(negotiation.RoleBuyer, "35,000", "")
	require.NoError(t, err)
	m.sync()

	got, _ = in.Get(id)
	assert.Equal(t, inbox.DealNegotiating, got.Status)
	assert.Contains(t, got.LastMessage, "35,000")
}
