package routing

import "metro-routing/network"

// ConnectedComponent returns the set of stations reachable from start,
// always including start itself. An unknown start yields an empty set.
func ConnectedComponent(g *network.Graph, start string) map[string]bool {
	if !g.HasNode(start) {
		return map[string]bool{}
	}
	component := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(node) {
			if component[nb.Key] {
				continue
			}
			component[nb.Key] = true
			queue = append(queue, nb.Key)
		}
	}
	return component
}

// Reachable reports whether goal can be reached from start. The relation
// is symmetric since the graph is undirected.
func Reachable(g *network.Graph, start, goal string) bool {
	return ConnectedComponent(g, start)[goal]
}

// NearestCommonStation returns the station minimizing the summed hop
// distance to both a and b, among stations reachable from each. Ties
// resolve by graph node insertion order. ErrNoRoute is returned when the
// two stations share no reachable node.
func NearestCommonStation(g *network.Graph, a, b string) (string, error) {
	if err := checkEndpoints(g, a, b); err != nil {
		return "", err
	}
	da := hopDistances(g, a)
	db := hopDistances(g, b)

	best := ""
	bestSum := -1
	for _, node := range g.Nodes() {
		ha, okA := da[node]
		hb, okB := db[node]
		if !okA || !okB {
			continue
		}
		if sum := ha + hb; bestSum < 0 || sum < bestSum {
			best, bestSum = node, sum
		}
	}
	if bestSum < 0 {
		return "", ErrNoRoute
	}
	return best, nil
}

// hopDistances is a BFS distance map from start over edge counts.
func hopDistances(g *network.Graph, start string) map[string]int {
	dist := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(node) {
			if _, seen := dist[nb.Key]; seen {
				continue
			}
			dist[nb.Key] = dist[node] + 1
			queue = append(queue, nb.Key)
		}
	}
	return dist
}
