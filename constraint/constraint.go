// Package constraint defines the Constraint vertex of a CSP graph: a named
// predicate over a focal variable's candidate value and the current domains
// of a list of other variables, plus the three stock monotone factories
// LessOrEqual, GreaterOrEqual, and Exactly.
package constraint

import (
	"fmt"

	"github.com/katalvlaran/arcsolve/variable"
)

// Predicate decides whether focalValue is still viable for the focal
// variable given the current domains of others. Implementations MUST be
// pure and MUST tolerate an empty others slice (the unary case).
//
// Stock predicates produced by the factories below are monotone: once a
// predicate returns false for a given (focalValue, others) pair, further
// shrinkage of any domain in others never makes it true again. The
// arc-consistency fixpoint relies on that to terminate; the termination of
// user-supplied, non-monotone predicates is the caller's obligation, not
// this package's.
type Predicate func(focalValue int, others []*variable.Variable) bool

// Constraint is a named, opaque predicate. Equality and hashing are by name
// only — predicates are never compared structurally.
type Constraint struct {
	name        string
	description string
	predicate   Predicate
}

// New creates a Constraint with the given name, predicate, and a free-text
// description used only for display.
func New(name string, predicate Predicate, description string) *Constraint {
	return &Constraint{name: name, description: description, predicate: predicate}
}

// Name returns the Constraint's unique name.
func (c *Constraint) Name() string { return c.name }

// Description returns the free-text, display-only description.
func (c *Constraint) Description() string { return c.description }

// Check evaluates the constraint's predicate for the given focal value and
// ordered list of other variables.
func (c *Constraint) Check(focalValue int, others []*variable.Variable) bool {
	return c.predicate(focalValue, others)
}

// Equal reports whether two Constraints share the same name. Predicates are
// opaque and intentionally excluded from the comparison.
func (c *Constraint) Equal(other *Constraint) bool {
	if other == nil {
		return false
	}
	return c.name == other.name
}

// String renders "NAME: <name>\n - Description: <description>", matching
// the display format the engine's originating implementation used for its
// constraint vertices.
func (c *Constraint) String() string {
	return fmt.Sprintf("NAME: %s\n - Description: %s", c.name, c.description)
}

// counts computes the pessimistic and optimistic tallies of checked over
// the focal value and the others' domains:
//   - hard(D) counts participants whose domain is the singleton {checked}.
//     The focal value contributes to hard iff focalValue == checked.
//   - soft(D) counts participants whose domain contains checked.
//     The focal value contributes to soft iff focalValue == checked.
func counts(checked, focalValue int, others []*variable.Variable) (hard, soft int) {
	if focalValue == checked {
		hard++
		soft++
	}
	for _, o := range others {
		if !o.Contains(checked) {
			continue
		}
		soft++
		if o.Size() == 1 {
			hard++
		}
	}
	return hard, soft
}

// LessOrEqual returns a monotone predicate equivalent to hard(D) <= n: if the
// count of participants forced to equal checked already exceeds n, no
// further domain shrinkage can bring the constraint back into compliance.
// Panics if n is negative — a negative threshold is never satisfiable and is
// a programmer error, not a runtime condition.
func LessOrEqual(checked, n int) Predicate {
	if n < 0 {
		panic("constraint: LessOrEqual requires n >= 0")
	}
	return func(focalValue int, others []*variable.Variable) bool {
		hard, _ := counts(checked, focalValue, others)
		return hard <= n
	}
}

// GreaterOrEqual returns a monotone predicate equivalent to soft(D) >= n: if
// even the optimistic count of participants that could still equal checked
// is below n, the constraint is unsatisfiable and stays so under further
// shrinkage. Panics if n is negative.
func GreaterOrEqual(checked, n int) Predicate {
	if n < 0 {
		panic("constraint: GreaterOrEqual requires n >= 0")
	}
	return func(focalValue int, others []*variable.Variable) bool {
		_, soft := counts(checked, focalValue, others)
		return soft >= n
	}
}

// Exactly returns a monotone predicate equivalent to hard(D) <= n && soft(D)
// >= n. Panics if n is negative.
func Exactly(checked, n int) Predicate {
	if n < 0 {
		panic("constraint: Exactly requires n >= 0")
	}
	return func(focalValue int, others []*variable.Variable) bool {
		hard, soft := counts(checked, focalValue, others)
		return hard <= n && soft >= n
	}
}
