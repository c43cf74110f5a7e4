package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultResolverLimit caps how many suggestions a resolve call returns.
	DefaultResolverLimit = 8
	// DefaultResolverMinScore is the score cutoff for fuzzy suggestions.
	DefaultResolverMinScore = 60
	// DefaultScorer is the general-purpose weighted scorer.
	DefaultScorer = "wratio"
)

// Load reads and validates the application configuration from the first
// readable path, falling back to config.yml in the working directory.
func Load(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	return Parse(data)
}

// Parse unmarshals, validates and applies defaults to raw YAML config.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Resolver.Limit == 0 {
		c.Resolver.Limit = DefaultResolverLimit
	}
	if c.Resolver.MinScore == 0 {
		c.Resolver.MinScore = DefaultResolverMinScore
	}
	if c.Resolver.Scorer == "" {
		c.Resolver.Scorer = DefaultScorer
	}
}
