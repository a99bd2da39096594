// Package solver orchestrates arc consistency and domain-splitting search
// over a cspgraph.Graph: seed a Frontier with every derivable ARC, drain it
// with single-arc steps, classify the result, and — when indeterminate —
// split on the first undecided variable and recurse over independent
// clones.
//
// The engine is single-threaded and synchronous; there is no locking here,
// and branch isolation comes entirely from cspgraph.Graph.Clone and
// frontier.Frontier.Clone.
package solver

import (
	"github.com/katalvlaran/arcsolve/cspgraph"
)

// ArcConsistency runs the full arc-consistency-with-splitting search over g
// and returns every solution found, each a VariableSnapshot per variable in
// g's AllVariableNames order. The returned sequence is empty (not nil) when
// the problem is infeasible. g is mutated in place as part of the top-level
// search; pass a Clone first if the caller needs the original preserved.
//
// If WithMaxBranches was supplied and the search splits more branches than
// that bound allows, ArcConsistency returns ErrMaxBranchesExceeded along
// with whatever solutions had already been found.
func ArcConsistency(g *cspgraph.Graph, opts ...Option) ([][]VariableSnapshot, error) {
	cfg := newConfig(opts)
	rs := &runState{maxBranches: cfg.maxBranches}

	f := seedFrontier(g)
	return trampoline(g, f, rs)
}

// DepthFirstSearchWithPruning is reserved for a future pruning strategy
// distinct from the arc-consistency-with-splitting search above. It never
// mutates g and currently always returns no solutions.
func DepthFirstSearchWithPruning(g *cspgraph.Graph) [][]VariableSnapshot {
	return nil
}

// runState threads the branch budget through the recursion; it is not part
// of the core algorithm, only of the WithMaxBranches safety valve.
type runState struct {
	maxBranches int
	branches    int
}

func (rs *runState) takeBranch() error {
	if rs.maxBranches <= 0 {
		return nil
	}
	rs.branches++
	if rs.branches > rs.maxBranches {
		return ErrMaxBranchesExceeded
	}
	return nil
}
