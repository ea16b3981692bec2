// Package export flattens generated terrain into ground rows for map
// storage and into text previews.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/samdwyer/archipelago/internal/gamedata"
	"github.com/samdwyer/archipelago/internal/island"
	"github.com/samdwyer/archipelago/internal/mapgen"
)

// GroundRow is one cell of an island as stored by map files.
type GroundRow struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	GroundID int `json:"ground_id"`
}

// IslandDoc is the export form of one island.
type IslandDoc struct {
	X        int         `json:"x"`
	Y        int         `json:"y"`
	IslandID string      `json:"island_id"`
	Ground   []GroundRow `json:"ground"`
}

// MapDoc is the export form of a whole map.
type MapDoc struct {
	Seed    int64         `json:"seed"`
	Layout  mapgen.Layout `json:"layout"`
	Islands []IslandDoc   `json:"islands"`
}

// Rows converts a grid into ground rows sorted by X, then Y. Every tile
// must have a ground in the registry.
func Rows(grid island.Grid, grounds *gamedata.GroundRegistry) ([]GroundRow, error) {
	rows := make([]GroundRow, 0, len(grid))
	for c, t := range grid {
		g := grounds.Lookup(t)
		if g == nil {
			return nil, fmt.Errorf("no ground defined for tile %v at (%d,%d)", t, c.X, c.Y)
		}
		rows = append(rows, GroundRow{X: c.X, Y: c.Y, GroundID: g.ID})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].X != rows[j].X {
			return rows[i].X < rows[j].X
		}
		return rows[i].Y < rows[j].Y
	})
	return rows, nil
}

// NewMapDoc builds the export document for a generated map.
func NewMapDoc(seed int64, islands []mapgen.PlacedIsland, grounds *gamedata.GroundRegistry) (*MapDoc, error) {
	doc := &MapDoc{
		Seed:    seed,
		Layout:  make(mapgen.Layout, 0, len(islands)),
		Islands: make([]IslandDoc, 0, len(islands)),
	}
	for _, pi := range islands {
		rows, err := Rows(pi.Island.Grid, grounds)
		if err != nil {
			return nil, fmt.Errorf("island %s: %w", pi.IslandID, err)
		}
		doc.Layout = append(doc.Layout, pi.Placement)
		doc.Islands = append(doc.Islands, IslandDoc{
			X:        pi.X,
			Y:        pi.Y,
			IslandID: pi.IslandID,
			Ground:   rows,
		})
	}
	return doc, nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ASCII renders a grid as text, one line per X value from the grid's
// bounds, using each ground's glyph. Cells outside the grid are blank.
func ASCII(grid island.Grid, grounds *gamedata.GroundRegistry) string {
	min, max, ok := grid.Bounds()
	if !ok {
		return ""
	}

	var b strings.Builder
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			t, ok := grid[island.Coord{X: x, Y: y}]
			if !ok {
				b.WriteByte(' ')
				continue
			}
			if g := grounds.Lookup(t); g != nil {
				b.WriteRune(g.GlyphRune())
			} else {
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
