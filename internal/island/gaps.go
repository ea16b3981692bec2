package island

import "github.com/zyedidia/generic/mapset"

// orthogonal neighbours; index i is bit i of an escape signature.
var orthogonal = [4]Coord{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// diagonalPairs are checked as (d, -d): land on both ends pinches the cell.
var diagonalPairs = [2]Coord{{-1, -1}, {-1, 1}}

var knightMoves = [8]Coord{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// trappedSignatures are escape signatures of a straight one-tile gulf:
// no open side, a single open side, or two opposite open sides.
var trappedSignatures = mapset.Of[uint8](
	0,
	1<<0, 1<<1, 1<<2, 1<<3,
	1<<0|1<<3,
	1<<1|1<<2,
)

// GapPass scans m once and returns the cells that close a one-tile gulf,
// strait or diagonal pinch. m is not modified.
func GapPass(m *Mask) []Coord {
	pending := mapset.New[Coord]()

	m.Each(func(c Coord) {
		for _, off := range orthogonal {
			p := c.Add(off)
			if m.Has(p) {
				continue
			}
			if isGulf(m, p) {
				pending.Put(p)
			}
		}

		for _, km := range knightMoves {
			if !m.Has(c.Add(km)) {
				continue
			}
			var bend, corner Coord
			if abs(km.X) == 1 {
				bend = Coord{X: c.X + km.X, Y: c.Y + km.Y/2}
				corner = Coord{X: c.X, Y: c.Y + km.Y/2}
			} else {
				bend = Coord{X: c.X + km.X/2, Y: c.Y + km.Y}
				corner = Coord{X: c.X + km.X/2, Y: c.Y}
			}
			if m.Has(bend) || m.Has(corner) {
				continue
			}
			pending.Put(bend)
		}
	})

	out := make([]Coord, 0, pending.Size())
	pending.Each(func(c Coord) {
		out = append(out, c)
	})
	sortCoords(out)
	return out
}

// isGulf reports whether the non-member p sits in a one-tile notch.
func isGulf(m *Mask, p Coord) bool {
	var escape uint8
	for i, off := range orthogonal {
		if !m.Has(p.Add(off)) {
			escape |= 1 << i
		}
	}
	if trappedSignatures.Has(escape) {
		return true
	}

	for _, d := range diagonalPairs {
		if m.Has(p.Add(d)) && m.Has(Coord{X: p.X - d.X, Y: p.Y - d.Y}) {
			return true
		}
	}
	return false
}

// FillGaps runs gap passes until none finds anything, adding each filled
// cell to m and writing fill into g. It returns the number of cells filled.
func FillGaps(m *Mask, g Grid, fill Tile) int {
	filled := 0
	for {
		pending := GapPass(m)
		if len(pending) == 0 {
			return filled
		}
		for _, c := range pending {
			m.Add(c)
			g[c] = fill
		}
		filled += len(pending)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
