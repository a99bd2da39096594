package cspgraph_test

import (
	"testing"

	"github.com/katalvlaran/arcsolve/constraint"
	"github.com/katalvlaran/arcsolve/cspgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVariable_RejectsEmptyName(t *testing.T) {
	g := cspgraph.New()
	assert.ErrorIs(t, g.AddVariable(""), cspgraph.ErrEmptyName)
}

func TestAddVariable_SilentlyRejectsCollision(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("X", 1, 2))
	require.NoError(t, g.AddVariable("X", 9)) // silent no-op, not an error

	v, ok := g.GetVariable("X")
	require.True(t, ok)
	assert.ElementsMatch(t, []int{1, 2}, v.Domain())
}

func TestAddVariable_RejectsCrossKindCollision(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddConstraint("X", constraint.Exactly(0, 1), ""))
	require.NoError(t, g.AddVariable("X", 1)) // silent no-op: name taken by a constraint

	_, ok := g.GetVariable("X")
	assert.False(t, ok)
}

func TestAddEdge_BipartiteOnly(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("A", 0, 1))
	require.NoError(t, g.AddVariable("B", 0, 1))
	require.NoError(t, g.AddConstraint("C", constraint.Exactly(1, 1), ""))

	assert.ErrorIs(t, g.AddEdge("A", "B"), cspgraph.ErrSameKind)
	assert.ErrorIs(t, g.AddEdge("C", "missing"), cspgraph.ErrVariableNotFound)

	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("C", "B")) // either ordering accepted

	assert.True(t, g.Adjacent("A", "C"))
	assert.True(t, g.Adjacent("C", "A"))
	assert.ElementsMatch(t, []string{"A", "B"}, g.VariableNeighbours("C"))
	assert.ElementsMatch(t, []string{"C"}, g.ConstraintNeighbours("A"))
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("A", 0))
	require.NoError(t, g.AddConstraint("C", constraint.Exactly(0, 1), ""))

	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("A", "C"))

	assert.Equal(t, []string{"C"}, g.ConstraintNeighbours("A"))
}

func TestRemoveVertex_CascadesEdges(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("A", 0))
	require.NoError(t, g.AddConstraint("C", constraint.Exactly(0, 1), ""))
	require.NoError(t, g.AddEdge("A", "C"))

	g.RemoveVertex("A")

	assert.False(t, g.Contains("A"))
	assert.Empty(t, g.VariableNeighbours("C"))
}

func TestRemoveVertex_NoOpOnMissing(t *testing.T) {
	g := cspgraph.New()
	assert.NotPanics(t, func() { g.RemoveVertex("ghost") })
}

func TestRemoveEdge_NoOpOnMissing(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("A", 0))
	assert.NotPanics(t, func() { g.RemoveEdge("A", "ghost") })
}

func TestAllNames_PreserveInsertionOrder(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("B", 0))
	require.NoError(t, g.AddVariable("A", 0))
	require.NoError(t, g.AddConstraint("Z", constraint.Exactly(0, 1), ""))
	require.NoError(t, g.AddConstraint("Y", constraint.Exactly(0, 1), ""))

	assert.Equal(t, []string{"B", "A"}, g.AllVariableNames())
	assert.Equal(t, []string{"Z", "Y"}, g.AllConstraintNames())
}

func TestClone_Independent(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("A", 0, 1))
	require.NoError(t, g.AddConstraint("C", constraint.Exactly(0, 1), ""))
	require.NoError(t, g.AddEdge("A", "C"))

	clone := g.Clone()
	cv, ok := clone.GetVariable("A")
	require.True(t, ok)
	cv.Remove(1)

	orig, _ := g.GetVariable("A")
	assert.ElementsMatch(t, []int{0, 1}, orig.Domain())
	assert.ElementsMatch(t, []int{0}, cv.Domain())

	clone.RemoveVertex("C")
	assert.True(t, g.Contains("C"))
	assert.False(t, clone.Contains("C"))
}

func TestString_ListsConstraintsVariablesAndEdges(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("V", 0, 10))
	require.NoError(t, g.AddConstraint("C", constraint.Exactly(0, 1), "exactly one zero"))
	require.NoError(t, g.AddEdge("V", "C"))

	dump := g.String()
	assert.Contains(t, dump, "NAME: C\n - Description: exactly one zero")
	assert.Contains(t, dump, "NAME: V\n - Domain: {0, 10}")
	assert.Contains(t, dump, " V -- C")
}
