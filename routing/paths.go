package routing

import (
	"fmt"
	"sort"

	"metro-routing/network"
)

// AlternativePaths enumerates simple (no repeated node) paths from start
// to goal with at most maxLength edges. The bound is mandatory; it is the
// hard cap that keeps the search from exponential blowup. Results are
// sorted by length ascending, ties in discovery order.
func AlternativePaths(g *network.Graph, start, goal string, maxLength int) ([][]string, error) {
	if maxLength < 1 {
		return nil, fmt.Errorf("routing: maxLength must be at least 1, got %d", maxLength)
	}
	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	var found [][]string
	path := []string{start}
	onPath := map[string]bool{start: true}

	var dfs func(node string)
	dfs = func(node string) {
		if node == goal {
			found = append(found, append([]string{}, path...))
			return
		}
		if len(path)-1 >= maxLength {
			return
		}
		for _, nb := range g.Neighbors(node) {
			if onPath[nb.Key] {
				continue
			}
			onPath[nb.Key] = true
			path = append(path, nb.Key)
			dfs(nb.Key)
			path = path[:len(path)-1]
			onPath[nb.Key] = false
		}
	}
	dfs(start)

	sort.SliceStable(found, func(i, j int) bool { return len(found[i]) < len(found[j]) })
	return found, nil
}
