// Package repository holds the turf catalog: immutable reference data loaded
// once at startup.
package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go -package=mock github.com/herculesarena/turfbooking/internal/domains/turfs/repository Querier

type Turf struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	BasePricePerHour float64  `json:"base_price_per_hour"`
	Image            string   `json:"image"`
	Description      string   `json:"description"`
	Features         []string `json:"features"`
}

type Querier interface {
	GetTurfs() []Turf
	GetTurfByID(id string) (Turf, bool)
}

//go:embed turfs.json
var seed []byte

type Catalog struct {
	turfs []Turf
	byID  map[string]Turf
}

var _ Querier = (*Catalog)(nil)

// New loads the catalog from the embedded seed document.
func New() (*Catalog, error) {
	return NewFromSeed(seed)
}

// NewFromSeed builds a catalog from a JSON array of turfs.
func NewFromSeed(data []byte) (*Catalog, error) {
	var turfs []Turf
	if err := json.Unmarshal(data, &turfs); err != nil {
		return nil, fmt.Errorf("turfs: parse seed failed: %w", err)
	}

	byID := make(map[string]Turf, len(turfs))
	for _, t := range turfs {
		byID[t.ID] = t
	}

	return &Catalog{
		turfs: turfs,
		byID:  byID,
	}, nil
}

func (c *Catalog) GetTurfs() []Turf {
	return c.turfs
}

func (c *Catalog) GetTurfByID(id string) (Turf, bool) {
	t, ok := c.byID[id]

	return t, ok
}
