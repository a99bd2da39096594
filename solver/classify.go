package solver

import "github.com/katalvlaran/arcsolve/cspgraph"

// checkAnswer snapshots every variable in g, in AllVariableNames order, and
// classifies the graph:
//   - any empty domain → (nil, determinateInfeasible).
//   - every domain a singleton → (snapshot, determinateUnique).
//   - otherwise → (snapshot, indeterminate).
//
// A graph with no variables at all is vacuously a unique solution with an
// empty assignment: treating "nothing to assign" as solved rather than
// infeasible matches the usual convention for an empty constraint problem.
func checkAnswer(g *cspgraph.Graph) ([]VariableSnapshot, classification) {
	names := g.AllVariableNames()
	if len(names) == 0 {
		return nil, determinateUnique
	}

	snapshot := make([]VariableSnapshot, 0, len(names))
	maxSize := 0
	for _, name := range names {
		v, ok := g.GetVariable(name)
		if !ok {
			continue
		}
		d := v.Domain()
		if len(d) == 0 {
			return nil, determinateInfeasible
		}
		if len(d) > maxSize {
			maxSize = len(d)
		}
		snapshot = append(snapshot, VariableSnapshot{Name: name, Domain: d})
	}

	if maxSize >= 2 {
		return snapshot, indeterminate
	}
	return snapshot, determinateUnique
}
