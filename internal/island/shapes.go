package island

import "math"

const (
	// anchorMargin keeps shape anchors away from the island's borders.
	anchorMargin = 8

	// shapeDensity scales the mean island dimension into a shape count.
	shapeDensity = 1.5

	// rectOdds is the n in the 1-in-n chance of stamping a rectangle.
	rectOdds = 4
)

// shapeStyle holds the per-method sizes of stamped shapes.
type shapeStyle struct {
	minRadius, maxRadius int
	rectOffset           int // rectangle top-left is anchor - rectOffset
	rectSpan             int // rectangle covers rectSpan+1 cells per axis
}

var shapeStyles = map[int]shapeStyle{
	MethodSmall: {minRadius: 3, maxRadius: 5, rectOffset: 3, rectSpan: 5},
	MethodLarge: {minRadius: 5, maxRadius: 8, rectOffset: 5, rectSpan: 8},
}

// ShapeCount returns how many shapes PlaceShapes stamps for the params.
func ShapeCount(p Params) int {
	return int(math.Round(float64(p.Width+p.Height) / 2 * shapeDensity))
}

// PlaceShapes stamps rectangles and circles onto a fresh mask to form the
// island silhouette. p must be valid.
func PlaceShapes(p Params, rng *Random) *Mask {
	style := shapeStyles[p.Method]
	mask := NewMask()

	for i := ShapeCount(p); i > 0; i-- {
		x := rng.IntRange(anchorMargin, p.Width-anchorMargin)
		y := rng.IntRange(anchorMargin, p.Height-anchorMargin)

		// The radius is drawn even when a rectangle wins the roll below;
		// skipping it would shift every later draw.
		radius := rng.IntRange(style.minRadius, style.maxRadius)

		if rng.IntRange(1, rectOdds) == 1 {
			stampRect(mask, x-style.rectOffset, y-style.rectOffset, style.rectSpan)
		} else {
			stampCircle(mask, Coord{X: x, Y: y}, radius)
		}
	}

	return mask
}

// stampRect marks the square from (left, top) to (left+span, top+span)
// inclusive.
func stampRect(m *Mask, left, top, span int) {
	for x := left; x <= left+span; x++ {
		for y := top; y <= top+span; y++ {
			m.Add(Coord{X: x, Y: y})
		}
	}
}

// stampCircle marks every cell within euclidean distance radius of center.
func stampCircle(m *Mask, center Coord, radius int) {
	r2 := radius * radius
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy <= r2 {
				m.Add(Coord{X: center.X + dx, Y: center.Y + dy})
			}
		}
	}
}
