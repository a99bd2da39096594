package solver

import (
	"github.com/katalvlaran/arcsolve/cspgraph"
	"github.com/katalvlaran/arcsolve/frontier"
)

// singleStep pops one ARC from f and, for each value currently in the focal
// variable's domain, evaluates the constraint against it and removes it on
// failure. If any value was removed, the re-check arcs for the affected
// variable are pushed back into f. Reports whether any value was removed;
// false when f was empty.
func singleStep(g *cspgraph.Graph, f *frontier.Frontier) bool {
	a, ok := f.Pop()
	if !ok {
		return false
	}

	reduced := false
	for _, d := range a.MainVar.Domain() {
		if !a.Constraint.Check(d, a.OtherVars) {
			a.MainVar.Remove(d)
			reduced = true
		}
	}

	if reduced {
		pushAll(f, allCheckAgainArcs(g, a.MainVar.Name(), a.Constraint.Name()))
	}
	return reduced
}

// splitDomain returns one clone of g per value in v's domain (in stable,
// sorted order), with that clone's copy of v reduced to the singleton
// {value}. Returns nil if v's domain is already empty.
func splitDomain(g *cspgraph.Graph, varName string) []*cspgraph.Graph {
	v, ok := g.GetVariable(varName)
	if !ok {
		return nil
	}
	values := v.Domain()
	if len(values) == 0 {
		return nil
	}

	out := make([]*cspgraph.Graph, 0, len(values))
	for _, d := range values {
		clone := g.Clone()
		cv, ok := clone.GetVariable(varName)
		if !ok {
			continue
		}
		for _, other := range cv.Domain() {
			if other != d {
				cv.Remove(other)
			}
		}
		out = append(out, clone)
	}
	return out
}

// firstSplittableVariable returns the first variable name, in
// AllVariableNames order, whose domain has more than one value.
func firstSplittableVariable(g *cspgraph.Graph) (string, bool) {
	for _, name := range g.AllVariableNames() {
		v, ok := g.GetVariable(name)
		if ok && v.Size() > 1 {
			return name, true
		}
	}
	return "", false
}
