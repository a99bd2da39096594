package solver

import (
	"github.com/katalvlaran/arcsolve/cspgraph"
	"github.com/katalvlaran/arcsolve/frontier"
)

// trampoline drains f against g with single-arc steps until either the
// graph classifies as determinate or the frontier empties while still
// indeterminate, in which case it splits on the first undecided variable
// and recurses over each resulting branch, concatenating their solutions in
// split order.
func trampoline(g *cspgraph.Graph, f *frontier.Frontier, rs *runState) ([][]VariableSnapshot, error) {
	for {
		snapshot, class := checkAnswer(g)
		switch class {
		case determinateInfeasible:
			return [][]VariableSnapshot{}, nil
		case determinateUnique:
			return [][]VariableSnapshot{snapshot}, nil
		}

		if f.Empty() {
			return split(g, f, rs)
		}
		singleStep(g, f)
	}
}

// split performs the SPLIT transition: pick the first splittable variable,
// produce one child graph per domain value, and recurse into each with an
// appropriately re-seeded clone of the current frontier.
func split(g *cspgraph.Graph, f *frontier.Frontier, rs *runState) ([][]VariableSnapshot, error) {
	varName, ok := firstSplittableVariable(g)
	if !ok {
		// Classification guarantees this cannot happen: indeterminate means
		// some variable has domain size >= 2.
		return [][]VariableSnapshot{}, nil
	}

	children := splitDomain(g, varName)
	results := [][]VariableSnapshot{}
	for _, child := range children {
		if err := rs.takeBranch(); err != nil {
			return results, err
		}

		childFrontier := f.Clone()
		pushAll(childFrontier, allCheckAgainArcs(child, varName, ""))

		sub, err := trampoline(child, childFrontier, rs)
		results = append(results, sub...)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
