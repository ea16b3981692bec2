package island

import "github.com/zyedidia/generic/mapset"

// Outline returns every non-member cell with at least one of its eight
// neighbours in m, sorted by X, then Y.
func Outline(m *Mask) []Coord {
	outline := mapset.New[Coord]()
	m.Each(func(c Coord) {
		for _, cp := range compass {
			n := c.Add(cp.offset)
			if !m.Has(n) {
				outline.Put(n)
			}
		}
	})

	out := make([]Coord, 0, outline.Size())
	outline.Each(func(c Coord) {
		out = append(out, c)
	})
	sortCoords(out)
	return out
}

// edgeRules map exact land-direction sets to edge shapes: straight coast,
// one-tile U-shaped gulfs, slight turns and outer corners.
var edgeRules = map[Direction]Shape{
	DirS:                 ShapeNorth,
	DirS | DirSE | DirSW: ShapeNorth,
	DirE:                 ShapeWest,
	DirE | DirNE | DirSE: ShapeWest,
	DirN:                 ShapeSouth,
	DirN | DirNE | DirNW: ShapeSouth,
	DirW:                 ShapeEast,
	DirW | DirNW | DirSW: ShapeEast,

	DirE | DirSE: ShapeWest,
	DirE | DirNE: ShapeWest,
	DirN | DirNE: ShapeSouth,
	DirN | DirNW: ShapeSouth,
	DirW | DirNW: ShapeEast,
	DirW | DirSW: ShapeEast,
	DirS | DirSW: ShapeNorth,
	DirS | DirSE: ShapeNorth,

	DirSE: ShapeOuterNW,
	DirNE: ShapeOuterSW,
	DirNW: ShapeOuterSE,
	DirSW: ShapeOuterNE,
}

// innerCorners are tried in order; the first triple contained in the land
// set wins.
var innerCorners = [4]struct {
	triple Direction
	shape  Shape
}{
	{DirE | DirSE | DirS, ShapeInnerNE},
	{DirS | DirSW | DirW, ShapeInnerNW},
	{DirW | DirNW | DirN, ShapeInnerSW},
	{DirN | DirNE | DirE, ShapeInnerSE},
}

// Classify picks the edge shape for an outline cell whose land neighbours
// lie in the given directions. ok is false when no rule applies.
func Classify(land Direction) (shape Shape, ok bool) {
	if s, found := edgeRules[land]; found {
		return s, true
	}
	if n := land.Count(); n >= 3 && n <= 5 {
		for _, ic := range innerCorners {
			if land.Contains(ic.triple) {
				return ic.shape, true
			}
		}
	}
	return ShapeFill, false
}

// InnerCornerMatches returns how many concave-corner triples land contains.
// Well-formed outlines never contain more than one.
func InnerCornerMatches(land Direction) int {
	n := 0
	for _, ic := range innerCorners {
		if land.Contains(ic.triple) {
			n++
		}
	}
	return n
}

// ClassifyOutline assigns a tile of the given layer to every outline cell
// of m. It panics with *UnclassifiedError if a cell matches no rule.
func ClassifyOutline(m *Mask, outline []Coord, layer Layer) map[Coord]Tile {
	tiles := make(map[Coord]Tile, len(outline))
	for _, c := range outline {
		land := landDirections(m, c)
		shape, ok := Classify(land)
		if !ok {
			panic(&UnclassifiedError{Cell: c, Land: land})
		}
		tiles[c] = Tile{Layer: layer, Shape: shape}
	}
	return tiles
}
