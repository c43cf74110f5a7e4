package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"metro-routing/config"
)

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
dataset:
  stationsCSV: stations.csv
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Dataset.StationsCSV != "stations.csv" {
		t.Errorf("stationsCSV = %q", cfg.Dataset.StationsCSV)
	}
	if cfg.Resolver.Limit != config.DefaultResolverLimit {
		t.Errorf("limit default = %d, want %d", cfg.Resolver.Limit, config.DefaultResolverLimit)
	}
	if cfg.Resolver.MinScore != config.DefaultResolverMinScore {
		t.Errorf("minScore default = %d, want %d", cfg.Resolver.MinScore, config.DefaultResolverMinScore)
	}
	if cfg.Resolver.Scorer != config.DefaultScorer {
		t.Errorf("scorer default = %q, want %q", cfg.Resolver.Scorer, config.DefaultScorer)
	}
}

func TestParse_ExplicitValuesKept(t *testing.T) {
	cfg, err := config.Parse([]byte(`
dataset:
  stationsCSV: s.csv
  routesCSV: r.csv
resolver:
  limit: 3
  minScore: 75
  scorer: token_sort
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Dataset.RoutesCSV != "r.csv" || cfg.Resolver.Limit != 3 ||
		cfg.Resolver.MinScore != 75 || cfg.Resolver.Scorer != "token_sort" {
		t.Errorf("config not preserved: %+v", cfg)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "missing stations dataset", yaml: "resolver:\n  limit: 3\n"},
		{name: "unknown scorer", yaml: "dataset:\n  stationsCSV: s.csv\nresolver:\n  scorer: sounds_like\n"},
		{name: "score out of range", yaml: "dataset:\n  stationsCSV: s.csv\nresolver:\n  minScore: 150\n"},
		{name: "malformed yaml", yaml: ":::"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Parse([]byte(tt.yaml)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoad_FirstReadablePathWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("dataset:\n  stationsCSV: s.csv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(filepath.Join(dir, "missing.yml"), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dataset.StationsCSV != "s.csv" {
		t.Errorf("loaded wrong file: %+v", cfg)
	}
}
