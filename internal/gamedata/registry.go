package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/archipelago/internal/island"
)

// GroundRegistry indexes ground definitions by tile kind.
type GroundRegistry struct {
	byTile map[island.Tile]*GroundDef
	all    []GroundDef
}

// NewGroundRegistry creates a registry from loaded ground definitions.
// Each tile kind and each ground id may appear only once.
func NewGroundRegistry(grounds []GroundDef) (*GroundRegistry, error) {
	registry := &GroundRegistry{
		byTile: make(map[island.Tile]*GroundDef, len(grounds)),
		all:    grounds,
	}
	ids := make(map[int]string, len(grounds))
	for i := range grounds {
		g := &grounds[i]
		if prev, ok := ids[g.ID]; ok {
			return nil, fmt.Errorf("ground id %d used by both %q and %q", g.ID, prev, g.Name)
		}
		ids[g.ID] = g.Name
		if prev, ok := registry.byTile[g.Tile()]; ok {
			return nil, fmt.Errorf("tile %v defined by both %q and %q", g.Tile(), prev.Name, g.Name)
		}
		registry.byTile[g.Tile()] = g
	}
	return registry, nil
}

// LoadGroundRegistry loads and creates a registry from the embedded grounds.json.
func LoadGroundRegistry() (*GroundRegistry, error) {
	grounds, err := LoadGrounds()
	if err != nil {
		return nil, err
	}
	if len(grounds) == 0 {
		return nil, errors.New("no grounds loaded from grounds.json")
	}
	return NewGroundRegistry(grounds)
}

// MustLoadGroundRegistry loads a registry, panicking on error.
func MustLoadGroundRegistry() *GroundRegistry {
	registry, err := LoadGroundRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Lookup returns the ground for a tile kind, or nil if none is defined.
func (r *GroundRegistry) Lookup(t island.Tile) *GroundDef {
	return r.byTile[t]
}

// All returns all ground definitions.
func (r *GroundRegistry) All() []GroundDef {
	return r.all
}

// Count returns the number of grounds in the registry.
func (r *GroundRegistry) Count() int {
	return len(r.all)
}
