package cspgraph

import "errors"

// ErrEmptyName indicates an empty string was used as a vertex name.
var ErrEmptyName = errors.New("cspgraph: name is empty")

// ErrVariableNotFound indicates an operation referenced a variable name
// absent from the graph.
var ErrVariableNotFound = errors.New("cspgraph: variable not found")

// ErrConstraintNotFound indicates an operation referenced a constraint name
// absent from the graph.
var ErrConstraintNotFound = errors.New("cspgraph: constraint not found")

// ErrSameKind indicates an edge was attempted between two vertices of the
// same kind (variable-variable or constraint-constraint), which the
// bipartite invariant forbids.
var ErrSameKind = errors.New("cspgraph: edge endpoints must be one variable and one constraint")
