// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates g, resolves cfg, runs
//     cons in order.
//   - Functional options (Option) resolve into an immutable config.
//   - Determinism: same inputs/options and constructor order yields an
//     identical graph (same names, same edge-insertion order).
//   - Safety: constructors never panic; they return sentinel errors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/arcsolve/connectivity"
	"github.com/katalvlaran/arcsolve/cspgraph"
)

// Constructor applies a deterministic mutation to g using the resolved
// config. Constructors MUST validate parameters early and return sentinel
// errors — never panic — and must preserve determinism for the same config
// and call order.
type Constructor func(g *cspgraph.Graph, cfg config) error

// Build creates a new cspgraph.Graph, resolves the builder configuration
// from opts, and applies every constructor in order. A constructor error is
// wrapped with "builder.Build: %w" and returned immediately; no partial
// cleanup is attempted.
func Build(opts []Option, cons ...Constructor) (*cspgraph.Graph, error) {
	g := cspgraph.New()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder.Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("builder.Build: %w", err)
		}
	}
	if cfg.requireConnected {
		if err := checkConnected(g); err != nil {
			return nil, fmt.Errorf("builder.Build: %w", err)
		}
	}
	return g, nil
}

// checkConnected verifies every vertex is reachable from the first
// variable. A graph with no variables passes vacuously.
func checkConnected(g *cspgraph.Graph) error {
	vars := g.AllVariableNames()
	if len(vars) == 0 {
		return nil
	}
	res, err := connectivity.Reachable(g, vars[0])
	if err != nil {
		return err
	}
	if total := len(vars) + len(g.AllConstraintNames()); len(res.Order) != total {
		return fmt.Errorf("%w: reached %d of %d vertices from %q",
			ErrDisconnected, len(res.Order), total, vars[0])
	}
	return nil
}
