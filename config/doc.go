// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// It covers the station dataset locations and the default fuzzy-resolver
// tuning used by the engine.
package config
