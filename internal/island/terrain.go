package island

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/archipelago/internal/telemetry"
)

// Pass is one ring of the coastline: gaps in the current mask are closed
// with Fill tiles, then the outline is tiled with Edge shapes.
type Pass struct {
	Fill Layer
	Edge Layer
}

// Passes are run in order from the land outwards.
var Passes = [3]Pass{
	{Fill: LayerLand, Edge: LayerSand},
	{Fill: LayerSand, Edge: LayerCoast},
	{Fill: LayerCoast, Edge: LayerDeepWater},
}

// PassStats records what a single pass added.
type PassStats struct {
	Pass     Pass
	GapFills int
	Outline  int
}

// BuildTerrain turns a land silhouette into a fully tiled grid. The mask
// grows by every pass's fills and outline; on return it covers the whole
// grid.
func BuildTerrain(ctx context.Context, m *Mask) (Grid, []PassStats) {
	grid := make(Grid, m.Len()*3)
	m.Each(func(c Coord) {
		grid[c] = Tile{Layer: LayerLand, Shape: ShapeFill}
	})

	stats := make([]PassStats, 0, len(Passes))
	for _, p := range Passes {
		stats = append(stats, runPass(ctx, m, grid, p))
	}
	return grid, stats
}

func runPass(ctx context.Context, m *Mask, grid Grid, p Pass) PassStats {
	_, span := telemetry.Tracer("island").Start(ctx, "island.layer")
	defer span.End()

	fills := FillGaps(m, grid, Tile{Layer: p.Fill, Shape: ShapeFill})

	outline := Outline(m)
	for c, t := range ClassifyOutline(m, outline, p.Edge) {
		grid[c] = t
	}
	for _, c := range outline {
		m.Add(c)
	}

	span.SetAttributes(
		attribute.String("layer.fill", p.Fill.String()),
		attribute.String("layer.edge", p.Edge.String()),
		attribute.Int("layer.gap_fills", fills),
		attribute.Int("layer.outline", len(outline)),
	)

	return PassStats{Pass: p, GapFills: fills, Outline: len(outline)}
}
