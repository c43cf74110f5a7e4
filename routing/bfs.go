package routing

import "metro-routing/network"

// HopPath returns the path with the fewest edge traversals from start to
// goal. Ties between equally short paths resolve by adjacency insertion
// order.
func HopPath(g *network.Graph, start, goal string) ([]string, error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if start == goal {
		return []string{start}, nil
	}
	visited := map[string]bool{start: true}
	parent := map[string]string{}
	queue := []string{start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(node) {
			if visited[nb.Key] {
				continue
			}
			visited[nb.Key] = true
			parent[nb.Key] = node
			if nb.Key == goal {
				return rebuildPath(parent, start, goal), nil
			}
			queue = append(queue, nb.Key)
		}
	}
	return nil, ErrNoRoute
}

// rebuildPath walks the parent chain from goal back to start.
func rebuildPath(parent map[string]string, start, goal string) []string {
	var rev []string
	for node := goal; ; node = parent[node] {
		rev = append(rev, node)
		if node == start {
			break
		}
	}
	path := make([]string, len(rev))
	for i, node := range rev {
		path[len(rev)-1-i] = node
	}
	return path
}

func checkEndpoints(g *network.Graph, start, goal string) error {
	if !g.HasNode(start) {
		return &UnknownStationError{Station: start}
	}
	if !g.HasNode(goal) {
		return &UnknownStationError{Station: goal}
	}
	return nil
}
