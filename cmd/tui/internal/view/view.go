package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/carlot/internal/favorite"
	"github.com/MrJamesThe3rd/carlot/internal/inbox"
	"github.com/MrJamesThe3rd/carlot/internal/listing"
	"github.com/MrJamesThe3rd/carlot/internal/navigation"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// Deps are the services screens are built from.
type Deps struct {
	Catalog   *vehicle.Catalog
	Favorites *favorite.Service
	Listings  *listing.Service
	Inbox     *inbox.Inbox
	Chats     *Chats
}

// New builds the screen for r.
func New(r navigation.Route, d Deps) (View, error) {
	switch p := r.Params.(type) {
	case navigation.NoParams:
		switch r.Screen {
		case navigation.ScreenCatalog:
			return NewCatalogModel(d.Catalog), nil
		case navigation.ScreenFavorites:
			return NewFavoritesModel(d.Catalog, d.Favorites), nil
		case navigation.ScreenInbox:
			return NewInboxModel(d.Inbox), nil
		}
	case navigation.VehicleParams:
		switch r.Screen {
		case navigation.ScreenVehicleDetail:
			return NewVehicleModel(d.Catalog.Get(p.VehicleID), d.Favorites, d.Inbox), nil
		case navigation.ScreenPublishListing:
			return NewPublishModel(d.Catalog, d.Listings, p.VehicleID), nil
		}
	case navigation.ListingsParams:
		return NewListingsModel(d.Listings, p.Status), nil
	case navigation.ChatParams:
		return NewChatModel(d.Chats.Open(p), p.ConversationID, d.Inbox), nil
	}

	return nil, fmt.Errorf("no screen for route %q", r.Screen)
}
