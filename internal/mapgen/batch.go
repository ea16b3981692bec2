package mapgen

import (
	"context"
	"fmt"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/archipelago/internal/island"
	"github.com/samdwyer/archipelago/internal/telemetry"
)

// PlacedIsland is a placement together with its generated terrain.
type PlacedIsland struct {
	Placement
	Island *island.Island
}

// GenerateIslands builds the terrain of every placement in layout, running
// up to workers generations at once. workers <= 0 uses GOMAXPROCS.
// Results are in layout order and do not depend on the worker count.
func GenerateIslands(ctx context.Context, layout Layout, workers int) ([]PlacedIsland, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, span := telemetry.Tracer("map").Start(ctx, "map.generate_islands")
	defer span.End()
	span.SetAttributes(
		attribute.Int("map.workers", workers),
		attribute.Int("map.islands", len(layout)),
	)

	out := make([]PlacedIsland, len(layout))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, pl := range layout {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			isl, err := island.Generate(gctx, pl.IslandID)
			if err != nil {
				return fmt.Errorf("island %d at (%d,%d): %w", i, pl.X, pl.Y, err)
			}
			// Each goroutine writes only its own slot.
			out[i] = PlacedIsland{Placement: pl, Island: isl}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "island generation failed")
		return nil, err
	}
	return out, nil
}
