package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/samdwyer/archipelago/internal/config"
)

func TestRunIslandSummary(t *testing.T) {
	cfg := &config.Config{IslandID: "island:0:30:30:42", Workers: 1, Format: config.FormatSummary}

	var buf bytes.Buffer
	if err := run(context.Background(), cfg, &buf); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "island:0:30:30:42: ") {
		t.Errorf("summary = %q, want island id prefix", buf.String())
	}
}

func TestRunMapIsDeterministic(t *testing.T) {
	for _, format := range []string{config.FormatSummary, config.FormatASCII, config.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			cfg := &config.Config{Seed: 1234, Workers: 2, Format: format}

			var a, b bytes.Buffer
			if err := run(context.Background(), cfg, &a); err != nil {
				t.Fatalf("run() error: %v", err)
			}
			if err := run(context.Background(), cfg, &b); err != nil {
				t.Fatalf("run() error: %v", err)
			}
			if a.String() != b.String() {
				t.Error("two runs with seed 1234 produced different output")
			}
		})
	}
}

func TestRunBadIslandID(t *testing.T) {
	cfg := &config.Config{IslandID: "island:0:30:30", Workers: 1, Format: config.FormatSummary}
	if err := run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Error("run() with a malformed island id should fail")
	}
}
