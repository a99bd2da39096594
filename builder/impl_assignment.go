package builder

import (
	"fmt"

	"github.com/katalvlaran/arcsolve/constraint"
	"github.com/katalvlaran/arcsolve/cspgraph"
)

// BipartiteAssignment returns a Constructor that models a one-to-one
// assignment problem: one variable per worker, its domain the indices
// 0..len(tasks)-1, and one `exactly(k, 1)` constraint per task index k
// (named after tasks[k]) forcing every task to be claimed by exactly one
// worker — the classic assignment-problem encoding as an arc-consistency
// CSP.
//
// Requires len(workers) == len(tasks) (else ErrMismatchedLengths) and both
// >= 2 (else ErrTooFewValues).
func BipartiteAssignment(workers, tasks []string) Constructor {
	return func(g *cspgraph.Graph, cfg config) error {
		if len(workers) != len(tasks) {
			return fmt.Errorf("BipartiteAssignment: %d workers vs %d tasks: %w", len(workers), len(tasks), ErrMismatchedLengths)
		}
		if len(workers) < 2 {
			return fmt.Errorf("BipartiteAssignment: need >= 2 workers/tasks: %w", ErrTooFewValues)
		}

		domain := make([]int, len(tasks))
		for i := range tasks {
			domain[i] = i
		}
		for _, w := range workers {
			if err := g.AddVariable(w, domain...); err != nil {
				return fmt.Errorf("BipartiteAssignment: add worker %q: %w", w, err)
			}
		}
		for i, task := range tasks {
			desc := fmt.Sprintf("exactly one worker is assigned to %q", task)
			if err := g.AddConstraint(task, constraint.Exactly(i, 1), desc); err != nil {
				return fmt.Errorf("BipartiteAssignment: add task constraint %q: %w", task, err)
			}
			for _, w := range workers {
				if err := g.AddEdge(w, task); err != nil {
					return fmt.Errorf("BipartiteAssignment: add edge %q-%q: %w", w, task, err)
				}
			}
		}
		return nil
	}
}
