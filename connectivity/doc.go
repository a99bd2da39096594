// Package connectivity provides breadth-first reachability over a
// *cspgraph.Graph, walking the bipartite variable/constraint adjacency
// without regard to vertex kind.
//
// The walk is a plain queue/visited/depth traversal with a functional
// option surface: context cancellation, OnVisit hooks, MaxDepth, and
// neighbour filtering.
package connectivity
