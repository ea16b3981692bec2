// Package island generates a single island's terrain from an island id:
// shape stamping, gap closing and layered coastline auto-tiling.
package island

import "fmt"

// Layer identifies a terrain band, ordered from the island core outwards.
type Layer uint8

const (
	// LayerLand is grass; the island body.
	LayerLand Layer = iota
	// LayerSand is the beach ring around the land.
	LayerSand
	// LayerCoast is shallow water around the beach.
	LayerCoast
	// LayerDeepWater is the outermost ring, blending into open sea.
	LayerDeepWater
)

var layerNames = [...]string{
	LayerLand:      "land",
	LayerSand:      "sand",
	LayerCoast:     "coast",
	LayerDeepWater: "deep_water",
}

// String returns the layer's name.
func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (l Layer) MarshalText() ([]byte, error) {
	if int(l) >= len(layerNames) {
		return nil, fmt.Errorf("unknown layer %d", l)
	}
	return []byte(layerNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layer) UnmarshalText(text []byte) error {
	for i, name := range layerNames {
		if name == string(text) {
			*l = Layer(i)
			return nil
		}
	}
	return fmt.Errorf("unknown layer %q", text)
}

// Shape is the geometric variant of a tile within its layer. Every layer
// shares the same 13 shapes.
type Shape uint8

const (
	// ShapeFill is a layer's interior tile.
	ShapeFill Shape = iota

	// Straight edges, named after the side facing away from the inner layer.
	ShapeNorth
	ShapeEast
	ShapeSouth
	ShapeWest

	// Convex (outer) corners.
	ShapeOuterNE
	ShapeOuterSE
	ShapeOuterSW
	ShapeOuterNW

	// Concave (inner) corners.
	ShapeInnerNE
	ShapeInnerSE
	ShapeInnerSW
	ShapeInnerNW
)

// PaletteSize is the number of shapes in each layer's palette.
const PaletteSize = 13

var shapeNames = [...]string{
	ShapeFill:    "fill",
	ShapeNorth:   "north",
	ShapeEast:    "east",
	ShapeSouth:   "south",
	ShapeWest:    "west",
	ShapeOuterNE: "outer_ne",
	ShapeOuterSE: "outer_se",
	ShapeOuterSW: "outer_sw",
	ShapeOuterNW: "outer_nw",
	ShapeInnerNE: "inner_ne",
	ShapeInnerSE: "inner_se",
	ShapeInnerSW: "inner_sw",
	ShapeInnerNW: "inner_nw",
}

// String returns the shape's name.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if int(s) >= len(shapeNames) {
		return nil, fmt.Errorf("unknown shape %d", s)
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	for i, name := range shapeNames {
		if name == string(text) {
			*s = Shape(i)
			return nil
		}
	}
	return fmt.Errorf("unknown shape %q", text)
}

// Tile is a terrain tile kind: a layer and a shape within it.
type Tile struct {
	Layer Layer `json:"layer"`
	Shape Shape `json:"shape"`
}

// String returns "layer/shape".
func (t Tile) String() string {
	return t.Layer.String() + "/" + t.Shape.String()
}

// Grid maps coordinates to their final tile.
type Grid map[Coord]Tile

// Count returns how many cells hold a tile of the given layer.
func (g Grid) Count(layer Layer) int {
	n := 0
	for _, t := range g {
		if t.Layer == layer {
			n++
		}
	}
	return n
}

// Bounds returns the inclusive bounding box of all cells in the grid.
// ok is false for an empty grid.
func (g Grid) Bounds() (min, max Coord, ok bool) {
	for c := range g {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max, ok
}
