package island

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Coord is a cell position on the island grid.
type Coord struct {
	X, Y int
}

// Add returns c offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Mask is a sparse set of cells belonging to the current terrain layer.
// Cells are only ever added.
type Mask struct {
	cells mapset.Set[Coord]
}

// NewMask returns an empty mask.
func NewMask() *Mask {
	return &Mask{cells: mapset.New[Coord]()}
}

// MaskOf returns a mask holding the given cells.
func MaskOf(cells ...Coord) *Mask {
	return &Mask{cells: mapset.Of(cells...)}
}

// Has reports whether c is in the mask.
func (m *Mask) Has(c Coord) bool {
	return m.cells.Has(c)
}

// Add puts c into the mask. Adding an existing cell is a no-op.
func (m *Mask) Add(c Coord) {
	m.cells.Put(c)
}

// Len returns the number of cells in the mask.
func (m *Mask) Len() int {
	return m.cells.Size()
}

// Each calls fn for every cell, in no particular order.
func (m *Mask) Each(fn func(c Coord)) {
	m.cells.Each(fn)
}

// Cells returns the mask's cells sorted by X, then Y.
func (m *Mask) Cells() []Coord {
	out := make([]Coord, 0, m.cells.Size())
	m.cells.Each(func(c Coord) {
		out = append(out, c)
	})
	sortCoords(out)
	return out
}

func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].X != cs[j].X {
			return cs[i].X < cs[j].X
		}
		return cs[i].Y < cs[j].Y
	})
}
