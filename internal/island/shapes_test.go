package island

import "testing"

func TestStampRect(t *testing.T) {
	m := NewMask()
	stampRect(m, 2, -1, 5)

	if m.Len() != 36 {
		t.Errorf("stampRect span 5 covered %d cells, want 36", m.Len())
	}
	for _, c := range []Coord{{2, -1}, {7, 4}, {2, 4}, {7, -1}} {
		if !m.Has(c) {
			t.Errorf("corner %v not covered", c)
		}
	}
	if m.Has(Coord{8, 4}) || m.Has(Coord{2, -2}) {
		t.Error("stampRect covered cells outside its span")
	}
}

func TestStampCircle(t *testing.T) {
	tests := []struct {
		radius int
		want   int
	}{
		{0, 1},
		{1, 5},
		{3, 29},
	}

	for _, tt := range tests {
		m := NewMask()
		stampCircle(m, Coord{10, 10}, tt.radius)
		if m.Len() != tt.want {
			t.Errorf("stampCircle radius %d covered %d cells, want %d", tt.radius, m.Len(), tt.want)
		}
	}
}

func TestShapeCount(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{30, 30, 45},
		{25, 28, 40}, // 39.75
		{25, 26, 38}, // 38.25
		{50, 56, 80}, // 79.5
	}

	for _, tt := range tests {
		if got := ShapeCount(Params{Width: tt.w, Height: tt.h}); got != tt.want {
			t.Errorf("ShapeCount(%dx%d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestPlaceShapesReproducibility(t *testing.T) {
	p := Params{Method: MethodSmall, Width: 30, Height: 30, Seed: 42}

	m1 := PlaceShapes(p, NewRandom(p.Seed))
	m2 := PlaceShapes(p, NewRandom(p.Seed))

	c1, c2 := m1.Cells(), m2.Cells()
	if len(c1) != len(c2) {
		t.Fatalf("cell count mismatch: %d != %d", len(c1), len(c2))
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("cell %d mismatch: %v != %v", i, c1[i], c2[i])
		}
	}
}

func TestPlaceShapesStaysNearAnchors(t *testing.T) {
	tests := []struct {
		params Params
		reach  int // furthest a shape reaches from its anchor
	}{
		{Params{Method: MethodSmall, Width: 28, Height: 25, Seed: 3}, 5},
		{Params{Method: MethodLarge, Width: 56, Height: 50, Seed: 3}, 8},
	}

	for _, tt := range tests {
		p := tt.params
		m := PlaceShapes(p, NewRandom(p.Seed))
		if m.Len() == 0 {
			t.Fatalf("method %d: no cells placed", p.Method)
		}
		m.Each(func(c Coord) {
			if c.X < anchorMargin-tt.reach || c.X > p.Width-anchorMargin+tt.reach ||
				c.Y < anchorMargin-tt.reach || c.Y > p.Height-anchorMargin+tt.reach {
				t.Errorf("method %d: cell %v beyond shape reach", p.Method, c)
			}
		})
	}
}

// Every shape consumes exactly four draws, the radius included even when a
// rectangle is stamped.
func TestPlaceShapesDrawsRadiusForRectangles(t *testing.T) {
	for _, method := range []int{MethodSmall, MethodLarge} {
		p := Params{Method: method, Width: 30, Height: 30, Seed: 99}
		style := shapeStyles[method]

		placed := NewRandom(p.Seed)
		PlaceShapes(p, placed)

		replay := NewRandom(p.Seed)
		rects := 0
		for i := 0; i < ShapeCount(p); i++ {
			replay.IntRange(anchorMargin, p.Width-anchorMargin)
			replay.IntRange(anchorMargin, p.Height-anchorMargin)
			replay.IntRange(style.minRadius, style.maxRadius)
			if replay.IntRange(1, rectOdds) == 1 {
				rects++
			}
		}
		if rects == 0 {
			t.Errorf("method %d: seed produced no rectangles, test is vacuous", method)
		}

		if a, b := placed.IntRange(0, 1<<30), replay.IntRange(0, 1<<30); a != b {
			t.Errorf("method %d: stream position differs after placing shapes (%d != %d)", method, a, b)
		}
	}
}
