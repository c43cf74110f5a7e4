package routing_test

import (
	"testing"

	"metro-routing/network"
	"metro-routing/routing"
)

// diamondGraph has two disjoint 2-edge routes from a to c: a-b-c and a-d-c.
func diamondGraph() *network.Graph {
	g := network.NewGraph()
	g.AddEdge("a", "b", 1, "l1")
	g.AddEdge("b", "c", 1, "l1")
	g.AddEdge("a", "d", 1, "l2")
	g.AddEdge("d", "c", 1, "l2")
	return g
}

func TestAlternativePaths_FindsBothRoutes(t *testing.T) {
	g := diamondGraph()
	paths, err := routing.AlternativePaths(g, "a", "c", 3)
	if err != nil {
		t.Fatalf("AlternativePaths failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 routes, got %d: %v", len(paths), paths)
	}
	// Equal length: discovery order breaks the tie, and the b edge was
	// inserted first.
	assertPath(t, paths[0], []string{"a", "b", "c"})
	assertPath(t, paths[1], []string{"a", "d", "c"})
}

func TestAlternativePaths_SortedByLengthAscending(t *testing.T) {
	g := diamondGraph()
	// Add a longer third route a-e-f-c.
	g.AddEdge("a", "e", 1, "l3")
	g.AddEdge("e", "f", 1, "l3")
	g.AddEdge("f", "c", 1, "l3")

	paths, err := routing.AlternativePaths(g, "a", "c", 4)
	if err != nil {
		t.Fatalf("AlternativePaths failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(paths))
	}
	for i := 1; i < len(paths); i++ {
		if len(paths[i]) < len(paths[i-1]) {
			t.Fatalf("routes not sorted by length: %v", paths)
		}
	}
}

func TestAlternativePaths_BoundIsEnforced(t *testing.T) {
	g := diamondGraph()
	paths, err := routing.AlternativePaths(g, "a", "c", 1)
	if err != nil {
		t.Fatalf("AlternativePaths failed: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("no route fits in 1 edge, got %v", paths)
	}

	paths, err = routing.AlternativePaths(g, "a", "c", 2)
	if err != nil {
		t.Fatalf("AlternativePaths failed: %v", err)
	}
	for _, p := range paths {
		if len(p)-1 > 2 {
			t.Fatalf("path %v exceeds the bound", p)
		}
	}
}

func TestAlternativePaths_RejectsNonPositiveBound(t *testing.T) {
	g := diamondGraph()
	if _, err := routing.AlternativePaths(g, "a", "c", 0); err == nil {
		t.Fatal("expected an error for maxLength 0")
	}
}

func TestAlternativePaths_SimplePathsOnly(t *testing.T) {
	g := diamondGraph()
	paths, err := routing.AlternativePaths(g, "a", "c", 6)
	if err != nil {
		t.Fatalf("AlternativePaths failed: %v", err)
	}
	for _, p := range paths {
		seen := map[string]bool{}
		for _, station := range p {
			if seen[station] {
				t.Fatalf("path %v repeats %q", p, station)
			}
			seen[station] = true
		}
	}
}

func TestHopPathNeverLongerThanAlternatives(t *testing.T) {
	g := diamondGraph()
	hop, err := routing.HopPath(g, "a", "c")
	if err != nil {
		t.Fatalf("HopPath failed: %v", err)
	}
	alts, err := routing.AlternativePaths(g, "a", "c", 5)
	if err != nil {
		t.Fatalf("AlternativePaths failed: %v", err)
	}
	for _, p := range alts {
		if len(hop) > len(p) {
			t.Fatalf("hop path %v longer than alternative %v", hop, p)
		}
	}
}
