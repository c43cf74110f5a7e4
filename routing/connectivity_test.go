package routing_test

import (
	"errors"
	"testing"

	"metro-routing/network"
	"metro-routing/routing"
)

// twoComponentGraph is a-b-c plus the separate pair x-y.
func twoComponentGraph() *network.Graph {
	g := network.NewGraph()
	g.AddEdge("a", "b", 1, "l1")
	g.AddEdge("b", "c", 1, "l1")
	g.AddEdge("x", "y", 1, "l2")
	return g
}

func TestConnectedComponent_AlwaysContainsStart(t *testing.T) {
	g := twoComponentGraph()
	g.AddNode("lonely")
	for _, start := range []string{"a", "x", "lonely"} {
		comp := routing.ConnectedComponent(g, start)
		if !comp[start] {
			t.Errorf("component of %q does not contain it", start)
		}
	}
	if comp := routing.ConnectedComponent(g, "a"); len(comp) != 3 || !comp["c"] {
		t.Errorf("component of a = %v", comp)
	}
	if comp := routing.ConnectedComponent(g, "lonely"); len(comp) != 1 {
		t.Errorf("isolated node component = %v", comp)
	}
}

func TestReachable_Symmetric(t *testing.T) {
	g := twoComponentGraph()
	pairs := [][2]string{{"a", "c"}, {"a", "x"}, {"x", "y"}, {"c", "y"}}
	for _, p := range pairs {
		if routing.Reachable(g, p[0], p[1]) != routing.Reachable(g, p[1], p[0]) {
			t.Errorf("Reachable(%s,%s) not symmetric", p[0], p[1])
		}
	}
	if !routing.Reachable(g, "a", "c") {
		t.Error("a and c are connected")
	}
	if routing.Reachable(g, "a", "y") {
		t.Error("a and y are in different components")
	}
}

func TestNearestCommonStation(t *testing.T) {
	g := twoComponentGraph()

	got, err := routing.NearestCommonStation(g, "a", "c")
	if err != nil {
		t.Fatalf("NearestCommonStation failed: %v", err)
	}
	// Every node on the a-c path sums to 2 hops; the tie resolves to the
	// first node in graph insertion order.
	if got != "a" {
		t.Errorf("common station = %q, want a", got)
	}

	if _, err := routing.NearestCommonStation(g, "a", "y"); !errors.Is(err, routing.ErrNoRoute) {
		t.Errorf("disjoint components: expected ErrNoRoute, got %v", err)
	}

	var unknown *routing.UnknownStationError
	if _, err := routing.NearestCommonStation(g, "a", "ghost"); !errors.As(err, &unknown) {
		t.Errorf("expected *UnknownStationError, got %v", err)
	}
}
