package cspgraph

import (
	"github.com/katalvlaran/arcsolve/constraint"
	"github.com/katalvlaran/arcsolve/variable"
)

// Graph is a bipartite graph of Variable and Constraint vertices. Names are
// unique across both catalogs: a variable and a constraint may never share a
// name. Edges are undirected and only ever join a variable to a constraint.
//
// Graph carries no locking of its own — see the package doc comment.
type Graph struct {
	variables   map[string]*variable.Variable
	constraints map[string]*constraint.Constraint

	// varOrder/constrOrder preserve first-insertion order so that
	// AllVariableNames/AllConstraintNames, and therefore everything the
	// solver derives from them, are deterministic for a given build
	// sequence (spec's stable-order requirement).
	varOrder    []string
	constrOrder []string

	// varEdges[v] lists the constraint names adjacent to variable v, in
	// the order those edges were added. constrEdges is the mirror image.
	varEdges    map[string][]string
	constrEdges map[string][]string
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		variables:   make(map[string]*variable.Variable),
		constraints: make(map[string]*constraint.Constraint),
		varEdges:    make(map[string][]string),
		constrEdges: make(map[string][]string),
	}
}

// isVariable and isConstraint report which catalog, if any, name belongs to.
func (g *Graph) isVariable(name string) bool {
	_, ok := g.variables[name]
	return ok
}

func (g *Graph) isConstraint(name string) bool {
	_, ok := g.constraints[name]
	return ok
}

// Contains reports whether name names a vertex of either kind.
func (g *Graph) Contains(name string) bool {
	return g.isVariable(name) || g.isConstraint(name)
}

// GetVariable returns the named variable and true, or nil and false if no
// such variable exists.
func (g *Graph) GetVariable(name string) (*variable.Variable, bool) {
	v, ok := g.variables[name]
	return v, ok
}

// GetConstraint returns the named constraint and true, or nil and false if
// no such constraint exists.
func (g *Graph) GetConstraint(name string) (*constraint.Constraint, bool) {
	c, ok := g.constraints[name]
	return c, ok
}

// AllVariableNames returns a snapshot of variable names in first-insertion
// order. Mutating the returned slice does not affect the graph.
func (g *Graph) AllVariableNames() []string {
	out := make([]string, len(g.varOrder))
	copy(out, g.varOrder)
	return out
}

// AllConstraintNames returns a snapshot of constraint names in
// first-insertion order.
func (g *Graph) AllConstraintNames() []string {
	out := make([]string, len(g.constrOrder))
	copy(out, g.constrOrder)
	return out
}
