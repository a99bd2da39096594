package builder

import (
	"fmt"

	"github.com/katalvlaran/arcsolve/constraint"
	"github.com/katalvlaran/arcsolve/cspgraph"
)

// AllDifferent returns a Constructor that adds one variable per name (each
// given the same initial domain) and, for every value in domain, one
// `exactly(value, 1)` constraint adjacent to every variable — forcing a
// solution where each value in domain is taken by exactly one variable.
//
// Requires len(names) == len(domain) (else ErrMismatchedLengths), both >= 2
// (else ErrTooFewValues), and no duplicate name in names (later duplicates
// are silently dropped by cspgraph.Graph.AddVariable, matching the
// bipartite-graph collision rule).
func AllDifferent(names []string, domain []int) Constructor {
	return func(g *cspgraph.Graph, cfg config) error {
		if len(names) != len(domain) {
			return fmt.Errorf("AllDifferent: %d names vs %d domain values: %w", len(names), len(domain), ErrMismatchedLengths)
		}
		if len(names) < 2 {
			return fmt.Errorf("AllDifferent: need >= 2 names and domain values: %w", ErrTooFewValues)
		}

		for _, name := range names {
			if err := g.AddVariable(name, domain...); err != nil {
				return fmt.Errorf("AllDifferent: add variable %q: %w", name, err)
			}
		}

		for _, v := range domain {
			cName := fmt.Sprintf("%s%d", cfg.constraintPrefix, v)
			desc := fmt.Sprintf("exactly one variable takes value %d", v)
			if err := g.AddConstraint(cName, constraint.Exactly(v, 1), desc); err != nil {
				return fmt.Errorf("AllDifferent: add constraint %q: %w", cName, err)
			}
			for _, name := range names {
				if err := g.AddEdge(name, cName); err != nil {
					return fmt.Errorf("AllDifferent: add edge %q-%q: %w", name, cName, err)
				}
			}
		}
		return nil
	}
}

// MiniSudokuSlice returns a Constructor for an n-variable, n-value
// all-different row: variables "Square1".."Square<n>", each with domain
// {1..n}, and n constraints "OnlyOneK" = Exactly(K, 1) for K in 1..n (with
// the default constraint prefix), each adjacent to every variable. Solving
// it enumerates every permutation of {1..n} across the n variables. An n
// below 2 yields ErrTooFewValues.
func MiniSudokuSlice(n int) Constructor {
	if n < 0 {
		n = 0
	}
	names := make([]string, n)
	domain := make([]int, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("Square%d", i+1)
		domain[i] = i + 1
	}
	return AllDifferent(names, domain)
}
