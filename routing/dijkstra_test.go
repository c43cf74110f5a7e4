package routing_test

import (
	"errors"
	"math"
	"testing"

	"metro-routing/network"
	"metro-routing/routing"
)

func TestDistancePath_WeightedLine(t *testing.T) {
	g := network.NewGraph()
	g.AddEdge("a", "b", 1.5, "l1")
	g.AddEdge("b", "c", 2.0, "l1")

	path, total, err := routing.DistancePath(g, "a", "c")
	if err != nil {
		t.Fatalf("DistancePath failed: %v", err)
	}
	assertPath(t, path, []string{"a", "b", "c"})
	if math.Abs(total-3.5) > 1e-9 {
		t.Errorf("total distance = %v, want 3.5", total)
	}
}

func TestDistancePath_PrefersLighterDetour(t *testing.T) {
	// Direct hop a-c weighs 5; the detour through b weighs 2.
	g := network.NewGraph()
	g.AddEdge("a", "c", 5, "l1")
	g.AddEdge("a", "b", 1, "l2")
	g.AddEdge("b", "c", 1, "l2")

	path, total, err := routing.DistancePath(g, "a", "c")
	if err != nil {
		t.Fatalf("DistancePath failed: %v", err)
	}
	assertPath(t, path, []string{"a", "b", "c"})
	if total != 2 {
		t.Errorf("total = %v, want 2", total)
	}
}

func TestDistancePath_TotalEqualsEdgeSum(t *testing.T) {
	g := interchangeGraph()
	path, total, err := routing.DistancePath(g, "a", "d")
	if err != nil {
		t.Fatalf("DistancePath failed: %v", err)
	}
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		e, ok := g.EdgeBetween(path[i], path[i+1])
		if !ok {
			t.Fatalf("returned path uses missing edge %s-%s", path[i], path[i+1])
		}
		sum += e.KM
	}
	if math.Abs(total-sum) > 1e-9 {
		t.Errorf("reported total %v != edge sum %v", total, sum)
	}
}

func TestDistancePath_FailureSemantics(t *testing.T) {
	g := interchangeGraph()
	g.AddNode("island")

	if _, _, err := routing.DistancePath(g, "a", "island"); !errors.Is(err, routing.ErrNoRoute) {
		t.Errorf("expected ErrNoRoute, got %v", err)
	}
	var unknown *routing.UnknownStationError
	if _, _, err := routing.DistancePath(g, "a", "ghost"); !errors.As(err, &unknown) {
		t.Errorf("expected *UnknownStationError, got %v", err)
	}
	if path, total, err := routing.DistancePath(g, "c", "c"); err != nil || total != 0 || len(path) != 1 {
		t.Errorf("same endpoints: path=%v total=%v err=%v", path, total, err)
	}
}
