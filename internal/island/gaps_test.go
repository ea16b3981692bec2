package island

import (
	"reflect"
	"testing"
)

func TestGapPassSolidBlock(t *testing.T) {
	m := NewMask()
	stampRect(m, 0, 0, 4)

	if got := GapPass(m); len(got) != 0 {
		t.Errorf("GapPass(solid block) = %v, want none", got)
	}
}

func TestGapPassEnclosedHole(t *testing.T) {
	m := NewMask()
	stampRect(m, 0, 0, 2)
	ring := MaskOf(m.Cells()...)
	ring = removeCell(ring, Coord{1, 1})

	got := GapPass(ring)
	want := []Coord{{1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GapPass(ring) = %v, want %v", got, want)
	}
}

func TestGapPassStraightGulf(t *testing.T) {
	// Two parallel walls one cell apart with a closed end. Every channel
	// cell is boxed in on two opposite sides.
	m := MaskOf(
		Coord{0, 0}, Coord{0, 1}, Coord{0, 2}, Coord{0, 3},
		Coord{1, 0},
		Coord{2, 0}, Coord{2, 1}, Coord{2, 2}, Coord{2, 3},
	)

	got := GapPass(m)
	for _, c := range []Coord{{1, 1}, {1, 2}, {1, 3}} {
		if !containsCoord(got, c) {
			t.Errorf("GapPass(gulf) = %v, missing %v", got, c)
		}
	}

	FillGaps(m, Grid{}, Tile{Layer: LayerLand})
	for _, c := range []Coord{{1, 1}, {1, 2}, {1, 3}} {
		if !m.Has(c) {
			t.Errorf("FillGaps left gulf cell %v open", c)
		}
	}
}

func TestGapPassDiagonalPinch(t *testing.T) {
	// (0,0) touches land at (1,0) and sits between (-1,-1) and (1,1).
	m := MaskOf(Coord{1, 0}, Coord{1, 1}, Coord{-1, -1})

	got := GapPass(m)
	if !containsCoord(got, Coord{0, 0}) {
		t.Errorf("GapPass(pinch) = %v, missing (0,0)", got)
	}
}

func TestGapPassKnightStrait(t *testing.T) {
	m := MaskOf(Coord{0, 0}, Coord{1, 2})

	got := GapPass(m)
	want := []Coord{{0, 1}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GapPass(knight) = %v, want %v", got, want)
	}
}

func TestGapPassDoesNotModifyMask(t *testing.T) {
	m := MaskOf(Coord{0, 0}, Coord{1, 2})
	GapPass(m)
	if m.Len() != 2 {
		t.Errorf("GapPass changed mask size to %d", m.Len())
	}
}

func TestFillGapsWritesFillTile(t *testing.T) {
	m := MaskOf(Coord{0, 0}, Coord{1, 2})
	grid := Grid{}
	fill := Tile{Layer: LayerSand, Shape: ShapeFill}

	n := FillGaps(m, grid, fill)
	if n == 0 {
		t.Fatal("FillGaps filled nothing")
	}
	if len(grid) != n {
		t.Errorf("grid holds %d tiles, FillGaps reported %d", len(grid), n)
	}
	for c, tile := range grid {
		if tile != fill {
			t.Errorf("grid[%v] = %v, want %v", c, tile, fill)
		}
		if !m.Has(c) {
			t.Errorf("filled cell %v missing from mask", c)
		}
	}
}

func TestFillGapsReachesFixedPoint(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		for _, method := range []int{MethodSmall, MethodLarge} {
			p := Params{Method: method, Width: 30, Height: 30, Seed: seed}
			m := PlaceShapes(p, NewRandom(seed))
			before := m.Len()

			FillGaps(m, Grid{}, Tile{Layer: LayerLand})

			if m.Len() < before {
				t.Fatalf("seed=%d: mask shrank from %d to %d", seed, before, m.Len())
			}
			if again := GapPass(m); len(again) != 0 {
				t.Errorf("seed=%d method=%d: pass after FillGaps found %v", seed, method, again)
			}
		}
	}
}

func containsCoord(cs []Coord, c Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

func removeCell(m *Mask, drop Coord) *Mask {
	out := NewMask()
	m.Each(func(c Coord) {
		if c != drop {
			out.Add(c)
		}
	})
	return out
}
