// Package network builds the undirected weighted station graph.
//
// Edges exist only between stations that are consecutive in some line's
// explicit ordering; line membership alone never creates adjacency. Edge
// weight is the haversine distance when both endpoints carry coordinates
// and 1.0 otherwise. An edge shared by several lines is stored once with
// the union of the justifying line ids. Adjacency lists keep insertion
// order, so traversals over a given graph are reproducible.
package network
