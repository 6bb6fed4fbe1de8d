package navigation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/carlot/internal/listing"
	"github.com/MrJamesThe3rd/carlot/internal/navigation"
)

func TestNewRoute(t *testing.T) {
	sold := listing.StatusSold

	tests := []struct {
		name    string
		screen  navigation.Screen
		params  navigation.Params
		wantErr error
	}{
		{name: "CatalogNoParams", screen: navigation.ScreenCatalog, params: navigation.NoParams{}},
		{name: "NilMeansNoParams", screen: navigation.ScreenInbox},
		{name: "Vehicle", screen: navigation.ScreenVehicleDetail, params: navigation.VehicleParams{VehicleID: "1"}},
		{name: "Chat", screen: navigation.ScreenChat, params: navigation.ChatParams{ConversationID: uuid.New(), VehicleID: "1"}},
		{name: "ListingsFiltered", screen: navigation.ScreenListings, params: navigation.ListingsParams{Status: &sold}},
		{name: "ChatWithoutParams", screen: navigation.ScreenChat, wantErr: navigation.ErrParamsMismatch},
		{name: "VehicleWithChatParams", screen: navigation.ScreenVehicleDetail, params: navigation.ChatParams{}, wantErr: navigation.ErrParamsMismatch},
		{name: "Unknown", screen: "settings", wantErr: navigation.ErrUnknownScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := navigation.NewRoute(tt.screen, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.screen, r.Screen)
			assert.NotEmpty(t, r.Title())
		})
	}
}

func TestStack(t *testing.T) {
	root, err := navigation.NewRoute(navigation.ScreenCatalog, nil)
	require.NoError(t, err)

	s := navigation.NewStack(root)

	detail, err := navigation.NewRoute(navigation.ScreenVehicleDetail, navigation.VehicleParams{VehicleID: "2"})
	require.NoError(t, err)

	s.Push(detail)
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, navigation.VehicleParams{VehicleID: "2"}, s.Current().Params)

	popped, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, detail, popped)

	_, ok = s.Pop()
	assert.False(t, ok)
	assert.Equal(t, root, s.Current())
	assert.Equal(t, 1, s.Depth())
}
