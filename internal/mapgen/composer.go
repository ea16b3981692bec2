// Package mapgen lays out islands on a map and generates their terrain.
package mapgen

import (
	"context"
	"math"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/archipelago/internal/island"
	"github.com/samdwyer/archipelago/internal/telemetry"
)

const (
	// slotSpacing is the distance between 3x3 grid slots.
	slotSpacing = 35
	// slotsPerAxis is the size of the slot grid.
	slotsPerAxis = 3

	minSmallSize = 25
	maxSmallSize = 28
	minLargeSize = 2 * minSmallSize
	maxLargeSize = 2 * maxSmallSize

	// largeAnchor is where the single large island is placed.
	largeAnchor = 20
)

// Source is the random stream a map layout is drawn from. *island.Random
// implements it.
type Source interface {
	IntRange(lo, hi int) int
	Int64Range(lo, hi int64) int64
	Float() float64
}

// Placement puts an island, identified lazily by its id, on the map.
type Placement struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	IslandID string `json:"island_id"`
}

// Layout is the ordered list of islands on a map.
type Layout []Placement

// Method is the map layout strategy.
type Method int

const (
	// MethodArchipelago scatters small islands over the 3x3 slot grid.
	MethodArchipelago Method = iota
	// MethodContinent places one large island.
	MethodContinent
)

// String returns a human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodArchipelago:
		return "archipelago"
	case MethodContinent:
		return "continent"
	default:
		return "unknown"
	}
}

// GenerateMap lays out a map from seed. Island terrain is not generated;
// each placement carries an island id to generate on demand.
func GenerateMap(ctx context.Context, seed int64) Layout {
	return Compose(ctx, island.NewRandom(seed))
}

// Compose lays out a map using draws from src.
func Compose(ctx context.Context, src Source) Layout {
	_, span := telemetry.Tracer("map").Start(ctx, "map.compose")
	defer span.End()

	method := Method(src.IntRange(0, 1))
	fallback := false

	var layout Layout
	if method == MethodArchipelago {
		layout = scatterIslands(src)
		// A lone small island looks like a failed archipelago; both it and
		// an empty map become one large island.
		if len(layout) <= 1 {
			layout = nil
			fallback = true
		}
	}
	if len(layout) == 0 {
		layout = Layout{largeIsland(src)}
	}

	span.SetAttributes(
		attribute.String("map.method", method.String()),
		attribute.Int("map.island_count", len(layout)),
		attribute.Bool("map.fallback", fallback),
	)

	return layout
}

// scatterIslands gives each 3x3 slot a 2 in 3 chance of a jittered small
// island.
func scatterIslands(src Source) Layout {
	var layout Layout
	for sx := 0; sx < slotsPerAxis; sx++ {
		for sy := 0; sy < slotsPerAxis; sy++ {
			if src.IntRange(0, 2) == 0 {
				continue
			}
			x := jitter(src, sx)
			y := jitter(src, sy)
			p := island.Params{Method: island.MethodSmall}
			p.Seed = islandSeed(src)
			p.Width = src.IntRange(minSmallSize, maxSmallSize)
			p.Height = src.IntRange(minSmallSize, maxSmallSize)
			layout = append(layout, Placement{X: x, Y: y, IslandID: p.ID()})
		}
	}
	return layout
}

// jitter scales a slot index to map space with a random 90%-107% stretch.
func jitter(src Source, slot int) int {
	return int(float64(slot*slotSpacing) * (src.Float()/6 + 0.90))
}

func largeIsland(src Source) Placement {
	p := island.Params{Method: island.MethodLarge}
	p.Seed = islandSeed(src)
	p.Width = src.IntRange(minLargeSize, maxLargeSize)
	p.Height = src.IntRange(minLargeSize, maxLargeSize)
	return Placement{X: largeAnchor, Y: largeAnchor, IslandID: p.ID()}
}

// islandSeed draws a seed for one island, independent of the map seed.
func islandSeed(src Source) int64 {
	return src.Int64Range(-math.MaxInt64, math.MaxInt64)
}
