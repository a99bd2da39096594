package solver

import (
	"github.com/katalvlaran/arcsolve/arc"
	"github.com/katalvlaran/arcsolve/cspgraph"
	"github.com/katalvlaran/arcsolve/frontier"
	"github.com/katalvlaran/arcsolve/variable"
)

// seedFrontier builds the initial Frontier for g: for every constraint, one
// ARC per adjacent variable, with that variable as the focal point and its
// co-neighbours (in stable edge order) as others.
func seedFrontier(g *cspgraph.Graph) *frontier.Frontier {
	f := frontier.New()
	for _, cName := range g.AllConstraintNames() {
		for _, a := range arcsForConstraint(g, cName) {
			f.Push(a)
		}
	}
	return f
}

// arcsForConstraint returns one ARC per variable adjacent to cName, in the
// order VariableNeighbours returns them.
func arcsForConstraint(g *cspgraph.Graph, cName string) []arc.ARC {
	c, ok := g.GetConstraint(cName)
	if !ok {
		return nil
	}
	neighbourNames := g.VariableNeighbours(cName)
	out := make([]arc.ARC, 0, len(neighbourNames))
	for i, focalName := range neighbourNames {
		focal, ok := g.GetVariable(focalName)
		if !ok {
			continue
		}
		others := otherVariables(g, neighbourNames, i)
		out = append(out, arc.New(focal, others, c))
	}
	return out
}

// otherVariables resolves every name in neighbourNames except the one at
// skip to its live *variable.Variable, preserving order.
func otherVariables(g *cspgraph.Graph, neighbourNames []string, skip int) []*variable.Variable {
	out := make([]*variable.Variable, 0, len(neighbourNames)-1)
	for i, name := range neighbourNames {
		if i == skip {
			continue
		}
		if v, ok := g.GetVariable(name); ok {
			out = append(out, v)
		}
	}
	return out
}
