// Package routing answers pathfinding queries over the built station graph.
//
// HopPath minimizes edge count (BFS), DistancePath minimizes cumulative
// weight (Dijkstra), AlternativePaths enumerates simple paths under a
// mandatory length bound. All traversals visit neighbors in adjacency
// insertion order, so results for a given graph are reproducible.
//
// Query-time failures are explicit values: an endpoint missing from the
// graph yields *UnknownStationError, a disconnected pair yields ErrNoRoute.
// Neither is ever a panic; both are expected outcomes the caller renders.
package routing
