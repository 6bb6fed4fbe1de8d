package inbox

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

// DealStatus is the deal stage shown on a conversation row.
type DealStatus string

const (
	DealActive      DealStatus = "active"
	DealNegotiating DealStatus = "negotiating"
	DealAccepted    DealStatus = "accepted"
	DealCompleted   DealStatus = "completed"
)

// Tab is one of the inbox filter tabs.
type Tab int

const (
	TabAll Tab = iota
	TabUnread
	TabOffers
	TabClosed
)

var tabs = []Tab{TabAll, TabUnread, TabOffers, TabClosed}

func Tabs() []Tab { return slices.Clone(tabs) }

func (t Tab) String() string {
	switch t {
	case TabAll:
		return "All"
	case TabUnread:
		return "Unread"
	case TabOffers:
		return "Offers"
	case TabClosed:
		return "Closed"
	}

	return "Unknown"
}

// Next cycles the tabs in display order. Unknown values restart at TabAll.
func (t Tab) Next() Tab {
	if t < TabAll || int(t) >= len(tabs) {
		return TabAll
	}

	return tabs[(int(t)+1)%len(tabs)]
}

func (t Tab) includes(s Summary) bool {
	switch t {
	case TabUnread:
		return s.UnreadCount > 0
	case TabOffers:
		return s.Status == DealNegotiating || s.Status == DealAccepted
	case TabClosed:
		return s.Status == DealCompleted
	}

	return true
}

// Summary is a conversation row. It is display data and is not derived from chat messages.
type Summary struct {
	ID          uuid.UUID
	DealerName  string
	LastMessage string
	UnreadCount int
	Status      DealStatus
	VehicleID   string
	VehicleInfo string
	UpdatedAt   time.Time
}

type Inbox struct {
	mu    sync.RWMutex
	items []Summary
}

func New(items []Summary) *Inbox {
	return &Inbox{items: slices.Clone(items)}
}

type searchable []Summary

func (s searchable) String(i int) string {
	return s[i].DealerName + " " + s[i].VehicleInfo + " " + s[i].LastMessage
}

func (s searchable) Len() int { return len(s) }

// Filter applies the text search and then the tab. With an empty query rows are newest first;
// otherwise they are ordered by match quality.
func (in *Inbox) Filter(query string, tab Tab) []Summary {
	in.mu.RLock()
	defer in.mu.RUnlock()

	var candidates []Summary

	if q := strings.TrimSpace(query); q != "" {
		for _, m := range fuzzy.FindFrom(q, searchable(in.items)) {
			candidates = append(candidates, in.items[m.Index])
		}
	} else {
		candidates = slices.Clone(in.items)
		slices.SortStableFunc(candidates, func(a, b Summary) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	}

	out := candidates[:0]
	for _, s := range candidates {
		if tab.includes(s) {
			out = append(out, s)
		}
	}

	return out
}

func (in *Inbox) Get(id uuid.UUID) (Summary, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	for _, s := range in.items {
		if s.ID == id {
			return s, true
		}
	}

	return Summary{}, false
}

// MarkRead clears the unread count of id. It reports whether the conversation exists.
func (in *Inbox) MarkRead(id uuid.UUID) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	for i := range in.items {
		if in.items[i].ID == id {
			in.items[i].UnreadCount = 0
			return true
		}
	}

	return false
}

// Touch records new activity on a conversation.
func (in *Inbox) Touch(id uuid.UUID, lastMessage string, status DealStatus, at time.Time) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	for i := range in.items {
		if in.items[i].ID == id {
			in.items[i].LastMessage = lastMessage
			in.items[i].Status = status
			in.items[i].UpdatedAt = at

			return true
		}
	}

	return false
}

// Add inserts s, replacing any conversation with the same id.
func (in *Inbox) Add(s Summary) {
	in.mu.Lock()
	defer in.mu.Unlock()

	for i := range in.items {
		if in.items[i].ID == s.ID {
			in.items[i] = s
			return
		}
	}

	in.items = append(in.items, s)
}

// FindByVehicle returns the most recently updated conversation about vehicleID.
func (in *Inbox) FindByVehicle(vehicleID string) (Summary, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	var (
		found Summary
		ok    bool
	)

	for _, s := range in.items {
		if s.VehicleID == vehicleID && (!ok || s.UpdatedAt.After(found.UpdatedAt)) {
			found, ok = s, true
		}
	}

	return found, ok
}

func (in *Inbox) UnreadTotal() int {
	in.mu.RLock()
	defer in.mu.RUnlock()

	total := 0
	for _, s := range in.items {
		total += s.UnreadCount
	}

	return total
}

// Seed builds the demo inbox from the first vehicles in the catalog.
func Seed(c *vehicle.Catalog, now time.Time) *Inbox {
	type row struct {
		last   string
		unread int
		status DealStatus
		age    time.Duration
	}

	rows := []row{
		{"Happy to do $37,300 if you can pick up this week.", 2, DealNegotiating, 5 * time.Minute},
		{"Yes, it's still available. When would you like to inspect?", 1, DealActive, 40 * time.Minute},
		{"Offer accepted. Payment details to follow.", 0, DealAccepted, 3 * time.Hour},
		{"Thanks for the purchase! Keys are ready for collection.", 0, DealCompleted, 26 * time.Hour},
		{"The finance payout letter is attached.", 3, DealActive, 50 * time.Hour},
	}

	vs := c.List()

	items := make([]Summary, 0, len(rows))
	for i, r := range rows {
		if i >= len(vs) {
			break
		}

		v := vs[i]

		dealer := v.Seller.Dealership
		if dealer == "" {
			dealer = v.Seller.Name
		}

		items = append(items, Summary{
			ID:          uuid.New(),
			DealerName:  dealer,
			LastMessage: r.last,
			UnreadCount: r.unread,
			Status:      r.status,
			VehicleID:   v.ID,
			VehicleInfo: v.Title(),
			UpdatedAt:   now.Add(-r.age),
		})
	}

	return New(items)
}
