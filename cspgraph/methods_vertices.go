package cspgraph

import (
	"github.com/katalvlaran/arcsolve/constraint"
	"github.com/katalvlaran/arcsolve/variable"
)

// AddVariable inserts a new variable with the given name and initial domain.
// Returns ErrEmptyName for an empty name. A name collision with an existing
// variable or constraint is silently rejected: the graph is left unchanged
// and no error is returned, matching the builder's idempotent-insert
// contract.
func (g *Graph) AddVariable(name string, initial ...int) error {
	if name == "" {
		return ErrEmptyName
	}
	if g.Contains(name) {
		return nil
	}
	v, err := variable.New(name, initial...)
	if err != nil {
		return err
	}
	g.variables[name] = v
	g.varOrder = append(g.varOrder, name)
	g.varEdges[name] = nil
	return nil
}

// AddConstraint inserts a new constraint with the given name, predicate, and
// display description. Returns ErrEmptyName for an empty name. A name
// collision with an existing variable or constraint is silently rejected.
func (g *Graph) AddConstraint(name string, predicate constraint.Predicate, description string) error {
	if name == "" {
		return ErrEmptyName
	}
	if g.Contains(name) {
		return nil
	}
	g.constraints[name] = constraint.New(name, predicate, description)
	g.constrOrder = append(g.constrOrder, name)
	g.constrEdges[name] = nil
	return nil
}

// RemoveVertex deletes the named variable or constraint, along with every
// edge touching it. A no-op if name names nothing.
func (g *Graph) RemoveVertex(name string) {
	if g.isVariable(name) {
		for _, cn := range g.varEdges[name] {
			g.constrEdges[cn] = removeName(g.constrEdges[cn], name)
		}
		delete(g.variables, name)
		delete(g.varEdges, name)
		g.varOrder = removeName(g.varOrder, name)
		return
	}
	if g.isConstraint(name) {
		for _, vn := range g.constrEdges[name] {
			g.varEdges[vn] = removeName(g.varEdges[vn], name)
		}
		delete(g.constraints, name)
		delete(g.constrEdges, name)
		g.constrOrder = removeName(g.constrOrder, name)
	}
}

func removeName(names []string, target string) []string {
	out := names[:0]
	for _, n := range names {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}
