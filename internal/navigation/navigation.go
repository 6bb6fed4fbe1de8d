package navigation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carlot/internal/listing"
)

var (
	ErrUnknownScreen  = errors.New("unknown screen")
	ErrParamsMismatch = errors.New("params do not match screen")
)

type Screen string

const (
	ScreenCatalog        Screen = "catalog"
	ScreenVehicleDetail  Screen = "vehicle_detail"
	ScreenFavorites      Screen = "favorites"
	ScreenListings       Screen = "listings"
	ScreenPublishListing Screen = "publish_listing"
	ScreenInbox          Screen = "inbox"
	ScreenChat           Screen = "chat"
)

// Params is implemented by the parameter shapes in this package.
type Params interface {
	params()
}

type NoParams struct{}

type VehicleParams struct {
	VehicleID string
}

type ChatParams struct {
	ConversationID uuid.UUID
	VehicleID      string
	DealerName     string
}

// ListingsParams filters the listings screen. A nil Status shows every listing.
type ListingsParams struct {
	Status *listing.Status
}

func (NoParams) params()       {}
func (VehicleParams) params()  {}
func (ChatParams) params()     {}
func (ListingsParams) params() {}

type routeEntry struct {
	title  string
	params reflect.Type
}

var routes = map[Screen]routeEntry{
	ScreenCatalog:        {"Browse", reflect.TypeFor[NoParams]()},
	ScreenVehicleDetail:  {"Vehicle", reflect.TypeFor[VehicleParams]()},
	ScreenFavorites:      {"Favorites", reflect.TypeFor[NoParams]()},
	ScreenListings:       {"My Listings", reflect.TypeFor[ListingsParams]()},
	ScreenPublishListing: {"Publish Listing", reflect.TypeFor[VehicleParams]()},
	ScreenInbox:          {"Messages", reflect.TypeFor[NoParams]()},
	ScreenChat:           {"Chat", reflect.TypeFor[ChatParams]()},
}

func Title(s Screen) string {
	return routes[s].title
}

type Route struct {
	Screen Screen
	Params Params
}

func (r Route) Title() string { return Title(r.Screen) }

// NewRoute checks params against the route table. Nil params stand for NoParams.
func NewRoute(s Screen, p Params) (Route, error) {
	entry, ok := routes[s]
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownScreen, s)
	}

	if p == nil {
		p = NoParams{}
	}

	if got := reflect.TypeOf(p); got != entry.params {
		return Route{}, fmt.Errorf("%w: %s wants %s, got %s", ErrParamsMismatch, s, entry.params.Name(), got.Name())
	}

	return Route{Screen: s, Params: p}, nil
}

// Stack is the back stack. Its root route is never popped.
type Stack struct {
	routes []Route
}

func NewStack(root Route) *Stack {
	return &Stack{routes: []Route{root}}
}

func (s *Stack) Push(r Route) {
	s.routes = append(s.routes, r)
}

// Pop removes the current route and reports whether it did. At the root it does nothing.
func (s *Stack) Pop() (Route, bool) {
	if len(s.routes) == 1 {
		return s.routes[0], false
	}

	top := s.routes[len(s.routes)-1]
	s.routes = s.routes[:len(s.routes)-1]

	return top, true
}

func (s *Stack) Current() Route {
	return s.routes[len(s.routes)-1]
}

func (s *Stack) Depth() int { return len(s.routes) }
