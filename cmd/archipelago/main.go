// Package main is the entry point for the archipelago generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/archipelago/internal/config"
	"github.com/samdwyer/archipelago/internal/export"
	"github.com/samdwyer/archipelago/internal/gamedata"
	"github.com/samdwyer/archipelago/internal/island"
	"github.com/samdwyer/archipelago/internal/mapgen"
	"github.com/samdwyer/archipelago/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Continuing without traces")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
}

// run generates what cfg asks for and writes it to w.
func run(ctx context.Context, cfg *config.Config, w io.Writer) error {
	grounds, err := gamedata.LoadGroundRegistry()
	if err != nil {
		return err
	}

	if cfg.IslandID != "" {
		isl, err := island.Generate(ctx, cfg.IslandID)
		if err != nil {
			return err
		}
		return writeIsland(w, cfg.Format, isl, grounds)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = island.NewUnseededRandom().Seed()
	}
	layout := mapgen.GenerateMap(ctx, seed)
	islands, err := mapgen.GenerateIslands(ctx, layout, cfg.Workers)
	if err != nil {
		return err
	}
	return writeMap(w, cfg.Format, seed, islands, grounds)
}

func writeIsland(w io.Writer, format string, isl *island.Island, grounds *gamedata.GroundRegistry) error {
	switch format {
	case config.FormatJSON:
		rows, err := export.Rows(isl.Grid, grounds)
		if err != nil {
			return err
		}
		return export.WriteJSON(w, export.IslandDoc{IslandID: isl.ID(), Ground: rows})
	case config.FormatASCII:
		_, err := io.WriteString(w, export.ASCII(isl.Grid, grounds))
		return err
	default:
		return writeSummary(w, isl)
	}
}

func writeMap(w io.Writer, format string, seed int64, islands []mapgen.PlacedIsland, grounds *gamedata.GroundRegistry) error {
	if format == config.FormatJSON {
		doc, err := export.NewMapDoc(seed, islands, grounds)
		if err != nil {
			return err
		}
		return export.WriteJSON(w, doc)
	}

	fmt.Fprintf(w, "map seed %d: %d islands\n", seed, len(islands))
	for _, pi := range islands {
		fmt.Fprintf(w, "\n@ (%d,%d) ", pi.X, pi.Y)
		if format == config.FormatASCII {
			fmt.Fprintln(w, pi.IslandID)
			if _, err := io.WriteString(w, export.ASCII(pi.Island.Grid, grounds)); err != nil {
				return err
			}
			continue
		}
		if err := writeSummary(w, pi.Island); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(w io.Writer, isl *island.Island) error {
	_, err := fmt.Fprintf(w, "%s: %d shapes, %d tiles (land %d, sand %d, coast %d, deep %d)\n",
		isl.ID(), isl.Shapes, len(isl.Grid),
		isl.Grid.Count(island.LayerLand),
		isl.Grid.Count(island.LayerSand),
		isl.Grid.Count(island.LayerCoast),
		isl.Grid.Count(island.LayerDeepWater),
	)
	return err
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ARCHIPELAGO_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_ARCHIPELAGO_DATASET")
	if dataset == "" {
		dataset = "archipelago" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
