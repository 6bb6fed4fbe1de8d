package vehicle

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Catalog is an immutable, ordered table of vehicles.
type Catalog struct {
	vehicles []Vehicle
	byID     map[string]int
}

// NewCatalog indexes vs by id. Later duplicates are dropped. It panics on an empty table
// since every lookup needs a fallback record.
func NewCatalog(vs []Vehicle) *Catalog {
	if len(vs) == 0 {
		panic("vehicle: catalog needs at least one vehicle")
	}

	c := &Catalog{
		vehicles: make([]Vehicle, 0, len(vs)),
		byID:     make(map[string]int, len(vs)),
	}

	for _, v := range vs {
		if _, dup := c.byID[v.ID]; dup {
			continue
		}

		c.byID[v.ID] = len(c.vehicles)
		c.vehicles = append(c.vehicles, v)
	}

	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return NewCatalog(seed())
}

// Get returns the vehicle with the given id, or the first vehicle in the table.
func (c *Catalog) Get(id string) Vehicle {
	if v, ok := c.Lookup(id); ok {
		return v
	}

	return c.vehicles[0]
}

func (c *Catalog) Lookup(id string) (Vehicle, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Vehicle{}, false
	}

	return c.vehicles[i], true
}

func (c *Catalog) List() []Vehicle {
	out := make([]Vehicle, len(c.vehicles))
	copy(out, c.vehicles)

	return out
}

func (c *Catalog) Len() int { return len(c.vehicles) }

// titles adapts the catalog to fuzzy.Source.
type titles []Vehicle

func (t titles) String(i int) string { return t[i].Title() + " " + t[i].BodyType + " " + t[i].Location }
func (t titles) Len() int { return len(t) }

// Filter returns vehicles whose title fuzzily matches query, best match first.
func (c *Catalog) Filter(query string) []Vehicle {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.List()
	}

	matches := fuzzy.FindFrom(query, titles(c.vehicles))

	out := make([]Vehicle, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.vehicles[m.Index])
	}

	return out
}
