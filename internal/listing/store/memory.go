package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carlot/internal/listing"
)

// Memory keeps listings for the lifetime of the process.
type Memory struct {
	mu       sync.RWMutex
	listings map[uuid.UUID]*listing.Listing
	order    []uuid.UUID
	now      func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		listings: make(map[uuid.UUID]*listing.Listing),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *Memory) CreateListing(_ context.Context, l *listing.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	l.ID = uuid.New()
	l.CreatedAt = now
	l.UpdatedAt = now

	stored := *l
	m.listings[l.ID] = &stored
	m.order = append(m.order, l.ID)

	return nil
}

func (m *Memory) GetListing(_ context.Context, id uuid.UUID) (*listing.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.listings[id]
	if !ok {
		return nil, listing.ErrNotFound
	}

	out := *l

	return &out, nil
}

// ListListings returns matching listings newest first.
func (m *Memory) ListListings(_ context.Context, filter listing.ListFilter) ([]*listing.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*listing.Listing, 0, len(m.order))

	for _, id := range slices.Backward(m.order) {
		l := m.listings[id]
		if filter.Status != nil && l.Status != *filter.Status {
			continue
		}

		cp := *l
		out = append(out, &cp)
	}

	return out, nil
}

func (m *Memory) UpdateStatus(_ context.Context, id uuid.UUID, status listing.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listings[id]
	if !ok {
		return listing.ErrNotFound
	}

	l.Status = status
	l.UpdatedAt = m.now()

	return nil
}

func (m *Memory) DeleteListing(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.listings[id]; !ok {
		return listing.ErrNotFound
	}

	delete(m.listings, id)
	m.order = slices.DeleteFunc(m.order, func(v uuid.UUID) bool { return v == id })

	return nil
}
