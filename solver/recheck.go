package solver

import (
	"github.com/katalvlaran/arcsolve/arc"
	"github.com/katalvlaran/arcsolve/cspgraph"
	"github.com/katalvlaran/arcsolve/frontier"
)

// allCheckAgainArcs computes the re-check arcs after mainVarName's domain
// changed via the constraint named excludeConstraint (empty string if the
// change did not come from a real constraint check, e.g. a domain split):
// for every other constraint adjacent to mainVarName, and every other
// variable adjacent to that constraint, push a fresh ARC focused on that
// variable.
func allCheckAgainArcs(g *cspgraph.Graph, mainVarName, excludeConstraint string) []arc.ARC {
	var out []arc.ARC
	for _, cName := range g.ConstraintNeighbours(mainVarName) {
		if cName == excludeConstraint {
			continue
		}
		c, ok := g.GetConstraint(cName)
		if !ok {
			continue
		}
		neighbourNames := g.VariableNeighbours(cName)
		for i, focalName := range neighbourNames {
			if focalName == mainVarName {
				continue
			}
			focal, ok := g.GetVariable(focalName)
			if !ok {
				continue
			}
			others := otherVariables(g, neighbourNames, i)
			out = append(out, arc.New(focal, others, c))
		}
	}
	return out
}

// pushAll pushes every arc in arcs into f.
func pushAll(f *frontier.Frontier, arcs []arc.ARC) {
	for _, a := range arcs {
		f.Push(a)
	}
}
