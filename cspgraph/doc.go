// Package cspgraph implements the bipartite CSP graph: variables and
// constraints looked up by unique name, connected by undirected edges that
// only ever join one variable to one constraint.
//
// Two name-keyed catalogs plus mirrored adjacency lists keep every lookup
// O(1) and every snapshot deterministic. The graph carries no locking: the
// engine that owns it is single-threaded and synchronous by design.
package cspgraph
