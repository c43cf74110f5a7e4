package network

import "sort"

// Edge is an undirected connection between two adjacent stations. Lines
// holds the sorted ids of every line that justifies the adjacency.
type Edge struct {
	A     string
	B     string
	KM    float64
	Lines []string
}

// Other returns the opposite endpoint of the edge.
func (e *Edge) Other(key string) string {
	if key == e.A {
		return e.B
	}
	return e.A
}

// HasLine reports whether a line id justifies this edge.
func (e *Edge) HasLine(id string) bool {
	for _, l := range e.Lines {
		if l == id {
			return true
		}
	}
	return false
}

// Neighbor is one adjacency as seen from a node.
type Neighbor struct {
	Key   string
	KM    float64
	Lines []string
}

// Graph is an undirected, simple, weighted station graph. It may be
// disconnected. A built graph is immutable and safe for concurrent reads.
type Graph struct {
	nodes []string
	index map[string]bool
	adj   map[string][]*Edge
	edges []*Edge
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: map[string]bool{},
		adj:   map[string][]*Edge{},
	}
}

// AddNode registers a station key. Re-adding is a no-op.
func (g *Graph) AddNode(key string) {
	if g.index[key] {
		return
	}
	g.index[key] = true
	g.nodes = append(g.nodes, key)
}

// AddEdge connects two stations. If the edge already exists the line id is
// merged into its line set and the original weight is kept, so an edge
// shared by several lines stays simple with one consistent weight.
// Self-loops are ignored.
func (g *Graph) AddEdge(a, b string, km float64, lineID string) {
	if a == b {
		return
	}
	g.AddNode(a)
	g.AddNode(b)
	if e, ok := g.EdgeBetween(a, b); ok {
		if lineID != "" && !e.HasLine(lineID) {
			e.Lines = append(e.Lines, lineID)
			sort.Strings(e.Lines)
		}
		return
	}
	e := &Edge{A: a, B: b, KM: km}
	if lineID != "" {
		e.Lines = []string{lineID}
	}
	g.edges = append(g.edges, e)
	g.adj[a] = append(g.adj[a], e)
	g.adj[b] = append(g.adj[b], e)
}

// HasNode reports whether a station key is present.
func (g *Graph) HasNode(key string) bool { return g.index[key] }

// Nodes returns all station keys in insertion order.
func (g *Graph) Nodes() []string { return g.nodes }

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge { return g.edges }

// Neighbors returns the adjacencies of a station in insertion order.
func (g *Graph) Neighbors(key string) []Neighbor {
	edges := g.adj[key]
	out := make([]Neighbor, 0, len(edges))
	for _, e := range edges {
		out = append(out, Neighbor{Key: e.Other(key), KM: e.KM, Lines: e.Lines})
	}
	return out
}

// EdgeBetween returns the edge connecting two stations, if any.
func (g *Graph) EdgeBetween(a, b string) (*Edge, bool) {
	for _, e := range g.adj[a] {
		if e.Other(a) == b {
			return e, true
		}
	}
	return nil, false
}

// NodeCount returns the number of stations.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
