// Package builder provides reusable functional-options building blocks for
// assembling recurring cspgraph.Graph topologies: one orchestrator (Build)
// that creates a graph and applies a deterministic sequence of Constructor
// closures, plus stock constructors for all-different-style CSPs.
//
// Constructors never panic; they validate early and return sentinel errors.
// Panics are confined to option constructors, where a bad argument is a
// programmer error rather than a runtime condition.
package builder
