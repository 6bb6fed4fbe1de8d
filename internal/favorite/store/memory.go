package store

import (
	"context"
	"slices"
	"sync"
)

// Memory is a favorites set that lives as long as the process.
type Memory struct {
	mu  sync.RWMutex
	ids []string // insertion order
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Add(_ context.Context, vehicleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(m.ids, vehicleID) {
		m.ids = append(m.ids, vehicleID)
	}

	return nil
}

func (m *Memory) Remove(_ context.Context, vehicleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ids = slices.DeleteFunc(m.ids, func(id string) bool { return id == vehicleID })

	return nil
}

func (m *Memory) Exists(_ context.Context, vehicleID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Contains(m.ids, vehicleID), nil
}

func (m *Memory) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := slices.Clone(m.ids)
	slices.Reverse(out)

	return out, nil
}
