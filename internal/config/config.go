// Package config holds the generator's run configuration.
package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Output formats.
const (
	FormatSummary = "summary"
	FormatASCII   = "ascii"
	FormatJSON    = "json"
)

// Config holds generator configuration options.
type Config struct {
	// Seed for map generation. A seed of 0 means a random seed will be picked.
	Seed int64
	// IslandID, when set, generates that single island instead of a map.
	IslandID string
	// Workers bounds how many islands are generated concurrently.
	Workers int
	// Format selects the output: summary, ascii or json.
	Format string
	// Telemetry enables the OTLP trace exporter.
	Telemetry bool
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Workers: runtime.GOMAXPROCS(0),
		Format:  FormatSummary,
	}
}

// FromEnv returns the defaults overridden by ARCHIPELAGO_* variables.
func FromEnv() (*Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (*Config, error) {
	c := Default()

	if v, ok := lookup("ARCHIPELAGO_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ARCHIPELAGO_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v, ok := lookup("ARCHIPELAGO_ISLAND"); ok {
		c.IslandID = v
	}
	if v, ok := lookup("ARCHIPELAGO_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("ARCHIPELAGO_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v, ok := lookup("ARCHIPELAGO_FORMAT"); ok && v != "" {
		c.Format = v
	}
	if v, ok := lookup("ARCHIPELAGO_TELEMETRY"); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("ARCHIPELAGO_TELEMETRY: %w", err)
		}
		c.Telemetry = on
	}

	return c, nil
}

// Bind attaches the configuration to the provided FlagSet. Flags override
// whatever the config already holds.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "map seed (0 picks one at random)")
	fs.StringVar(&c.IslandID, "island", c.IslandID, "generate a single island from its id, e.g. island:0:30:30:42")
	fs.IntVar(&c.Workers, "workers", c.Workers, "islands generated concurrently")
	fs.StringVar(&c.Format, "format", c.Format, "output format: summary, ascii or json")
	fs.BoolVar(&c.Telemetry, "telemetry", c.Telemetry, "export traces over OTLP")
}

// Validate checks option values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatSummary, FormatASCII, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
