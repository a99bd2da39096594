// Package arcsolve is an arc-consistency solver for constraint
// satisfaction problems over finite integer domains.
//
// 🚀 What is arcsolve?
//
//	A small, focused CSP engine that brings together:
//
//	  • A bipartite graph of named variables and constraints (cspgraph)
//	  • Three stock monotone constraint factories: ≤n, ≥n, =n (constraint)
//	  • A deduplicating, unary-first work frontier (frontier)
//	  • Arc consistency with recursive domain splitting (solver)
//
// ✨ Why choose arcsolve?
//
//   - Deterministic         — same build order in, same solution order out
//   - Complete enumeration  — every consistent assignment, not just one
//   - Pure Go               — no cgo, no hidden dependencies
//   - Single-threaded       — no locks, no surprises; branches are clones
//
// Under the hood, everything is organized per concern:
//
//	variable/     — a named finite set of integers, mutated only by add/remove
//	constraint/   — named opaque predicates plus the three stock factories
//	cspgraph/     — the bipartite variable↔constraint graph, deep-clonable
//	arc/          — the ⟨focal, others, constraint⟩ unit of work
//	frontier/     — two-tier FIFO queue, deduplicated by canonical key
//	solver/       — seed, fixpoint, classify, split, recurse, concatenate
//	builder/      — functional-option constructors for stock CSP topologies
//	connectivity/ — breadth-first reachability over the bipartite adjacency
//	cli/          — a line-oriented interactive graph builder
//
// Quick ASCII example — two variables sharing one "exactly one 1" rule:
//
//	    A───C───B        A,B ∈ {0,1}, C = exactly(1, 1)
//
//	solves to the two assignments (A=0,B=1) and (A=1,B=0).
//
// Dive into each package's doc comments for contracts, invariants, and
// worked examples.
//
//	go get github.com/katalvlaran/arcsolve
package arcsolve
