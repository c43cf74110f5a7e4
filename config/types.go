package config

// DatasetConfig points at the tabular inputs the catalog is built from.
type DatasetConfig struct {
	// StationsCSV is the primary dataset: one row per station/line
	// membership with optional coordinates and sequence numbers.
	StationsCSV string `yaml:"stationsCSV" validate:"required"`
	// RoutesCSV is an optional ordered-route dataset (line, sequence,
	// station). When present it overrides per-line ordering derived
	// from the primary dataset.
	RoutesCSV string `yaml:"routesCSV" validate:"omitempty"`
}

// ResolverConfig contains defaults for the fuzzy station resolver.
type ResolverConfig struct {
	Limit    int    `yaml:"limit" validate:"gte=0"`
	MinScore int    `yaml:"minScore" validate:"gte=0,lte=100"`
	Scorer   string `yaml:"scorer" validate:"omitempty,oneof=ratio partial token_sort token_set wratio"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Dataset  DatasetConfig  `yaml:"dataset" validate:"required"`
	Resolver ResolverConfig `yaml:"resolver"`
}
