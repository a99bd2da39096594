package solver_test

import (
	"testing"

	"github.com/katalvlaran/arcsolve/constraint"
	"github.com/katalvlaran/arcsolve/cspgraph"
	"github.com/katalvlaran/arcsolve/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domainOf(t *testing.T, sol []solver.VariableSnapshot, name string) []int {
	t.Helper()
	for _, s := range sol {
		if s.Name == name {
			return s.Domain
		}
	}
	t.Fatalf("variable %q not present in solution", name)
	return nil
}

// A single unary constraint forces the one surviving value.
func TestArcConsistency_UnaryForcing(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("V", 0, 10))
	require.NoError(t, g.AddConstraint("C", constraint.Exactly(0, 1), ""))
	require.NoError(t, g.AddEdge("V", "C"))

	got, err := solver.ArcConsistency(g)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int{0}, domainOf(t, got[0], "V"))
}

// An empty starting domain makes the whole problem infeasible.
func TestArcConsistency_InfeasibleEmptyDomain(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("V"))
	require.NoError(t, g.AddConstraint("C", constraint.Exactly(0, 1), ""))
	require.NoError(t, g.AddEdge("V", "C"))

	got, err := solver.ArcConsistency(g)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Two symmetric variables under exactly-one-1 split into two branches.
func TestArcConsistency_BinaryExactlyOne(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("A", 0, 1))
	require.NoError(t, g.AddVariable("B", 0, 1))
	require.NoError(t, g.AddConstraint("C", constraint.Exactly(1, 1), ""))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("B", "C"))

	got, err := solver.ArcConsistency(g)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []int{0}, domainOf(t, got[0], "A"))
	assert.Equal(t, []int{1}, domainOf(t, got[0], "B"))
	assert.Equal(t, []int{1}, domainOf(t, got[1], "A"))
	assert.Equal(t, []int{0}, domainOf(t, got[1], "B"))
}

// Four variables each with domain {1,2,3,4} and one "exactly one"
// constraint per value, each spanning all four variables: the same
// permutation-forcing shape as a sudoku row, at a size (4! = 24 solutions)
// a unit test can exhaustively check.
func TestArcConsistency_PermutationSlice(t *testing.T) {
	names := []string{"Sq1", "Sq2", "Sq3", "Sq4"}
	g := cspgraph.New()
	for _, name := range names {
		require.NoError(t, g.AddVariable(name, 1, 2, 3, 4))
	}
	for k := 1; k <= 4; k++ {
		cname := []string{"OnlyOne1", "OnlyOne2", "OnlyOne3", "OnlyOne4"}[k-1]
		require.NoError(t, g.AddConstraint(cname, constraint.Exactly(k, 1), ""))
		for _, name := range names {
			require.NoError(t, g.AddEdge(name, cname))
		}
	}

	got, err := solver.ArcConsistency(g)
	require.NoError(t, err)
	assert.Len(t, got, 24)

	for _, sol := range got {
		seen := make(map[int]bool, 4)
		for _, s := range sol {
			require.Len(t, s.Domain, 1)
			assert.False(t, seen[s.Domain[0]], "value repeated within one solution")
			seen[s.Domain[0]] = true
		}
		assert.Len(t, seen, 4)
	}
}

func TestArcConsistency_MaxBranchesExceeded(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("A", 0, 1))
	require.NoError(t, g.AddVariable("B", 0, 1))
	require.NoError(t, g.AddConstraint("C", constraint.Exactly(1, 1), ""))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("B", "C"))

	_, err := solver.ArcConsistency(g, solver.WithMaxBranches(1))
	assert.ErrorIs(t, err, solver.ErrMaxBranchesExceeded)
}

func TestDepthFirstSearchWithPruning_DoesNotMutate(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("V", 0, 10))

	got := solver.DepthFirstSearchWithPruning(g)
	assert.Empty(t, got)

	v, _ := g.GetVariable("V")
	assert.ElementsMatch(t, []int{0, 10}, v.Domain())
}

func TestVariableSnapshot_StringAndEqual(t *testing.T) {
	a := solver.VariableSnapshot{Name: "V", Domain: []int{0, 10}}
	b := solver.VariableSnapshot{Name: "V", Domain: []int{0, 10}}
	c := solver.VariableSnapshot{Name: "V", Domain: []int{10, 0}}

	assert.Equal(t, "V = {0, 10}", a.String())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(solver.VariableSnapshot{Name: "W", Domain: []int{0, 10}}))
}
