package island

import (
	"sort"
	"strings"
)

// Direction is a set of compass directions packed into a bitmask.
//
// The map frame is isometric: north runs along +X and east along +Y.
type Direction uint8

const (
	DirN Direction = 1 << iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

// compass lists the eight single directions with their grid offsets.
var compass = [8]struct {
	dir    Direction
	name   string
	offset Coord
}{
	{DirN, "n", Coord{1, 0}},
	{DirNE, "ne", Coord{1, 1}},
	{DirE, "e", Coord{0, 1}},
	{DirSE, "se", Coord{-1, 1}},
	{DirS, "s", Coord{-1, 0}},
	{DirSW, "sw", Coord{-1, -1}},
	{DirW, "w", Coord{0, -1}},
	{DirNW, "nw", Coord{1, -1}},
}

// Count returns the number of directions in the set.
func (d Direction) Count() int {
	n := 0
	for ; d != 0; d &= d - 1 {
		n++
	}
	return n
}

// Contains reports whether every direction in other is also in d.
func (d Direction) Contains(other Direction) bool {
	return d&other == other
}

// String lists the directions in sorted name order, e.g. "[e s se]".
func (d Direction) String() string {
	var names []string
	for _, c := range compass {
		if d&c.dir != 0 {
			names = append(names, c.name)
		}
	}
	sort.Strings(names)
	return "[" + strings.Join(names, " ") + "]"
}

// landDirections returns the directions around c whose neighbour is in m.
func landDirections(m *Mask, c Coord) Direction {
	var d Direction
	for _, cp := range compass {
		if m.Has(c.Add(cp.offset)) {
			d |= cp.dir
		}
	}
	return d
}
