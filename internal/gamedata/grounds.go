package gamedata

import "github.com/samdwyer/archipelago/internal/island"

// GroundDef describes how a terrain tile is stored and previewed.
type GroundDef struct {
	ID    int          `json:"id"`    // Ground id handed to map storage
	Name  string       `json:"name"`  // Display name (e.g., "Sand North")
	Layer island.Layer `json:"layer"` // Terrain layer (e.g., "sand")
	Shape island.Shape `json:"shape"` // Shape within the layer (e.g., "north")
	Glyph string       `json:"glyph"` // Single character for text previews
}

// Tile returns the tile kind the ground stands for.
func (g *GroundDef) Tile() island.Tile {
	return island.Tile{Layer: g.Layer, Shape: g.Shape}
}

// GlyphRune returns the glyph as a rune for text previews.
func (g *GroundDef) GlyphRune() rune {
	if len(g.Glyph) == 0 {
		return '?'
	}
	return rune(g.Glyph[0])
}

// GroundsFile represents the structure of grounds.json.
type GroundsFile struct {
	Grounds []GroundDef `json:"grounds"`
}

// LoadGrounds loads ground definitions from the embedded grounds.json file.
func LoadGrounds() ([]GroundDef, error) {
	file, err := Load[GroundsFile]("grounds.json")
	if err != nil {
		return nil, err
	}
	return file.Grounds, nil
}
