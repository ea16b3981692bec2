package island

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/archipelago/internal/telemetry"
)

// Island is a generated island: its params and its tiled terrain.
type Island struct {
	Params Params
	Grid   Grid
	Shapes int
	Passes []PassStats
}

// ID returns the island id the island was generated from.
func (i *Island) ID() string {
	return i.Params.ID()
}

// Generate decodes id and builds the island it describes. The same id
// always yields the same grid.
func Generate(ctx context.Context, id string) (*Island, error) {
	p, err := ParseID(id)
	if err != nil {
		_, span := telemetry.Tracer("island").Start(ctx, "island.generate")
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed island id")
		span.End()
		return nil, err
	}
	return GenerateParams(ctx, p)
}

// GenerateParams builds the island described by p.
func GenerateParams(ctx context.Context, p Params) (*Island, error) {
	tracer := telemetry.Tracer("island")
	ctx, span := tracer.Start(ctx, "island.generate")
	defer span.End()

	span.SetAttributes(
		attribute.Int("island.method", p.Method),
		attribute.Int("island.width", p.Width),
		attribute.Int("island.height", p.Height),
		attribute.Int64("island.seed", p.Seed),
	)

	if err := p.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid island params")
		return nil, err
	}

	startTime := time.Now()

	rng := NewRandom(p.Seed)
	mask := PlaceShapes(p, rng)
	grid, passes := BuildTerrain(ctx, mask)

	isl := &Island{
		Params: p,
		Grid:   grid,
		Shapes: ShapeCount(p),
		Passes: passes,
	}

	span.SetAttributes(
		attribute.Int("island.shape_count", isl.Shapes),
		attribute.Int("island.land_gap_fills", passes[0].GapFills),
		attribute.Int("island.tile_count", len(grid)),
		attribute.Int64("island.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return isl, nil
}
