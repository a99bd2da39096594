// Package persistence declares save/load entry points for CSP graphs.
//
// Neither direction is implemented: constraint predicates are opaque
// closures, so no serialisation format for a full graph exists yet. The
// functions are declared so callers can wire storage plumbing today and
// pick up an implementation later.
package persistence

import (
	"errors"
	"io"

	"github.com/katalvlaran/arcsolve/cspgraph"
)

// ErrNotImplemented is returned by both SaveCSPGraph and LoadCSPGraph.
var ErrNotImplemented = errors.New("persistence: not implemented")

// SaveCSPGraph would serialise g to w. Not implemented yet; always returns
// ErrNotImplemented and writes nothing.
func SaveCSPGraph(w io.Writer, g *cspgraph.Graph) error {
	return ErrNotImplemented
}

// LoadCSPGraph would deserialise a graph from r. Not implemented yet;
// always returns ErrNotImplemented.
func LoadCSPGraph(r io.Reader) (*cspgraph.Graph, error) {
	return nil, ErrNotImplemented
}
