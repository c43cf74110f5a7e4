package network

import (
	"metro-routing/catalog"
	"metro-routing/internal"
)

// Build constructs the station graph from a loaded catalog.
//
// Every catalog station becomes a node. Edges come exclusively from lines
// with explicit ordering: each consecutive pair in a line's ordered walk is
// connected. Lines without ordering data contribute no edges, which can
// leave the graph sparse or even edge-free; that mirrors the completeness
// of the source dataset and is not inferred around.
func Build(c *catalog.Catalog) *Graph {
	g := NewGraph()
	for _, s := range c.Stations() {
		g.AddNode(s.Key)
	}
	for _, l := range c.Lines() {
		if !l.Ordered() {
			continue
		}
		ordered := l.OrderedStations()
		for i := 0; i+1 < len(ordered); i++ {
			g.AddEdge(ordered[i], ordered[i+1], edgeWeight(c, ordered[i], ordered[i+1]), l.ID)
		}
	}
	return g
}

// edgeWeight is the haversine distance when both endpoints have
// coordinates, else a unit hop weight.
func edgeWeight(c *catalog.Catalog, a, b string) float64 {
	sa, okA := c.Get(a)
	sb, okB := c.Get(b)
	if okA && okB && sa.HasCoord && sb.HasCoord {
		return internal.HaversineKM(sa.Lat, sa.Lon, sb.Lat, sb.Lon)
	}
	return 1.0
}
