// Package metrorouting is a station-network routing engine. It builds an
// in-memory graph from line-ordered station data and answers pathfinding
// queries (fewest stops, shortest distance, alternative routes,
// interchange and connectivity analysis), fed by a typo-tolerant station
// name resolver.
//
// The engine publishes one immutable catalog+graph snapshot. All queries
// are pure reads over that snapshot and safe to run concurrently from any
// number of request handlers without locking; Reload builds a complete
// replacement off to the side and swaps it in atomically, so no in-flight
// query ever observes a partially rebuilt graph.
package metrorouting

import (
	"fmt"
	"sync/atomic"

	"metro-routing/catalog"
	"metro-routing/config"
	"metro-routing/fuzzy"
	"metro-routing/network"
	"metro-routing/routing"
)

// Strategy selects the optimization target for FindRoute.
type Strategy string

const (
	// StrategyHops minimizes the number of stops.
	StrategyHops Strategy = "hops"
	// StrategyDistance minimizes cumulative travel distance.
	StrategyDistance Strategy = "distance"
)

// ParseStrategy maps a raw strategy string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyHops, "":
		return StrategyHops, nil
	case StrategyDistance:
		return StrategyDistance, nil
	}
	return "", fmt.Errorf("unknown routing strategy %q", s)
}

// Snapshot is one immutable catalog and graph pair.
type Snapshot struct {
	Catalog *catalog.Catalog
	Graph   *network.Graph
}

// Engine is the process-wide entry point for resolver and routing queries.
type Engine struct {
	cfg    config.AppConfig
	scorer fuzzy.ScorerKind
	snap   atomic.Pointer[Snapshot]
}

// NewEngine loads the configured datasets and builds the first snapshot.
func NewEngine(cfg config.AppConfig) (*Engine, error) {
	scorer, err := fuzzy.ParseScorer(cfg.Resolver.Scorer)
	if err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, scorer: scorer}
	if err := e.Reload(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEngineFromCatalog builds an engine over an already loaded catalog.
// Reload is unavailable on such an engine since no sources are configured.
func NewEngineFromCatalog(c *catalog.Catalog, rc config.ResolverConfig) (*Engine, error) {
	scorer, err := fuzzy.ParseScorer(rc.Scorer)
	if err != nil {
		return nil, err
	}
	e := &Engine{cfg: config.AppConfig{Resolver: rc}, scorer: scorer}
	e.snap.Store(&Snapshot{Catalog: c, Graph: network.Build(c)})
	return e, nil
}

// Reload rebuilds the catalog and graph from the configured sources and
// publishes them with a single atomic swap.
func (e *Engine) Reload() error {
	if e.cfg.Dataset.StationsCSV == "" {
		return fmt.Errorf("no stations dataset configured")
	}
	c, err := catalog.LoadFiles(e.cfg.Dataset.StationsCSV, e.cfg.Dataset.RoutesCSV)
	if err != nil {
		return err
	}
	e.snap.Store(&Snapshot{Catalog: c, Graph: network.Build(c)})
	return nil
}

// Snapshot returns the currently published catalog and graph.
func (e *Engine) Snapshot() *Snapshot { return e.snap.Load() }

// ResolveStation ranks catalog stations against raw user text.
func (e *Engine) ResolveStation(raw string) ([]fuzzy.Match, error) {
	snap := e.snap.Load()
	return fuzzy.Resolve(raw, snap.Catalog.Names(), fuzzy.Options{
		Limit:    e.cfg.Resolver.Limit,
		MinScore: e.cfg.Resolver.MinScore,
		Scorer:   e.scorer,
	})
}

// Autocomplete suggests stations for a partial query.
func (e *Engine) Autocomplete(prefix string, limit int) ([]fuzzy.Match, error) {
	snap := e.snap.Load()
	return fuzzy.Autocomplete(prefix, snap.Catalog.Names(), limit)
}

// FindRoute computes a route between two station names, which must
// resolve exactly (case/space-insensitively). An endpoint missing from
// the catalog returns *routing.UnknownStationError before any search
// runs, so the caller can fall back to ResolveStation for suggestions.
func (e *Engine) FindRoute(fromRaw, toRaw string, strategy Strategy) (*routing.Route, error) {
	snap := e.snap.Load()
	from, ok := snap.Catalog.Get(fromRaw)
	if !ok {
		return nil, &routing.UnknownStationError{Station: fromRaw}
	}
	to, ok := snap.Catalog.Get(toRaw)
	if !ok {
		return nil, &routing.UnknownStationError{Station: toRaw}
	}

	var path []string
	var err error
	switch strategy {
	case StrategyDistance:
		path, _, err = routing.DistancePath(snap.Graph, from.Key, to.Key)
	case StrategyHops, "":
		path, err = routing.HopPath(snap.Graph, from.Key, to.Key)
	default:
		return nil, fmt.Errorf("unknown routing strategy %q", strategy)
	}
	if err != nil {
		return nil, err
	}
	return routing.BuildRoute(snap.Graph, path), nil
}

// AlternativeRoutes enumerates simple routes of at most maxLength hops,
// shortest first.
func (e *Engine) AlternativeRoutes(fromRaw, toRaw string, maxLength int) ([]*routing.Route, error) {
	snap := e.snap.Load()
	from, ok := snap.Catalog.Get(fromRaw)
	if !ok {
		return nil, &routing.UnknownStationError{Station: fromRaw}
	}
	to, ok := snap.Catalog.Get(toRaw)
	if !ok {
		return nil, &routing.UnknownStationError{Station: toRaw}
	}
	paths, err := routing.AlternativePaths(snap.Graph, from.Key, to.Key, maxLength)
	if err != nil {
		return nil, err
	}
	routes := make([]*routing.Route, 0, len(paths))
	for _, p := range paths {
		routes = append(routes, routing.BuildRoute(snap.Graph, p))
	}
	return routes, nil
}

// NearestCommonStation finds the station minimizing summed hop distance
// to both endpoints.
func (e *Engine) NearestCommonStation(aRaw, bRaw string) (string, error) {
	snap := e.snap.Load()
	a, ok := snap.Catalog.Get(aRaw)
	if !ok {
		return "", &routing.UnknownStationError{Station: aRaw}
	}
	b, ok := snap.Catalog.Get(bRaw)
	if !ok {
		return "", &routing.UnknownStationError{Station: bRaw}
	}
	return routing.NearestCommonStation(snap.Graph, a.Key, b.Key)
}

// ListLines returns all line ids, sorted.
func (e *Engine) ListLines() []string {
	return e.snap.Load().Catalog.LineIDs()
}

// StationsOnLine returns the station keys of a line in order: the
// explicitly sequenced walk first, membership-only stations after it.
func (e *Engine) StationsOnLine(lineID string) ([]string, bool) {
	l, ok := e.snap.Load().Catalog.Line(lineID)
	if !ok {
		return nil, false
	}
	return l.Stations, true
}

// IsInterchange reports whether a station serves two or more lines, and
// which ones.
func (e *Engine) IsInterchange(name string) (bool, []string) {
	s, ok := e.snap.Load().Catalog.Get(name)
	if !ok {
		return false, nil
	}
	return len(s.Lines) >= 2, s.Lines
}

// Nearby returns stations within radiusKM of a coordinate, closest first.
func (e *Engine) Nearby(lat, lon, radiusKM float64) []catalog.NearbyStation {
	return e.snap.Load().Catalog.Nearby(lat, lon, radiusKM)
}
