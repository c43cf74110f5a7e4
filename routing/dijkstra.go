package routing

import (
	"container/heap"

	"metro-routing/network"
)

// DistancePath returns the minimum cumulative-weight path from start to
// goal and its total distance. Weights are non-negative by construction.
func DistancePath(g *network.Graph, start, goal string) ([]string, float64, error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, 0, err
	}
	if start == goal {
		return []string{start}, 0, nil
	}

	dist := map[string]float64{start: 0}
	parent := map[string]string{}
	done := map[string]bool{}

	pq := &distQueue{}
	heap.Init(pq)
	pq.push(start, 0)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*distItem)
		if done[item.key] {
			continue
		}
		done[item.key] = true
		if item.key == goal {
			return rebuildPath(parent, start, goal), item.dist, nil
		}
		for _, nb := range g.Neighbors(item.key) {
			if done[nb.Key] {
				continue
			}
			alt := item.dist + nb.KM
			if cur, seen := dist[nb.Key]; !seen || alt < cur {
				dist[nb.Key] = alt
				parent[nb.Key] = item.key
				pq.push(nb.Key, alt)
			}
		}
	}
	return nil, 0, ErrNoRoute
}

type distItem struct {
	key  string
	dist float64
	seq  int
}

// distQueue is a min-heap on cumulative distance; insertion sequence
// breaks ties so equal-distance pops are deterministic.
type distQueue struct {
	items []*distItem
	next  int
}

func (q *distQueue) Len() int { return len(q.items) }

func (q *distQueue) Less(i, j int) bool {
	if q.items[i].dist != q.items[j].dist {
		return q.items[i].dist < q.items[j].dist
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *distQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *distQueue) Push(x any) { q.items = append(q.items, x.(*distItem)) }

func (q *distQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

func (q *distQueue) push(key string, dist float64) {
	heap.Push(q, &distItem{key: key, dist: dist, seq: q.next})
	q.next++
}
