// Package variable defines the Variable vertex of a CSP graph: a named,
// finite set of integers whose only mutation is domain add/remove.
//
// Variable carries no locking of its own. The engine that owns a graph of
// Variables is single-threaded and synchronous (see cspgraph and solver);
// concurrent callers must coordinate externally.
package variable

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyName indicates a Variable was constructed with an empty name.
var ErrEmptyName = errors.New("variable: name is empty")

// Variable is a named finite set of integers.
//
// Two Variables are Equal if their names match and their domains contain
// exactly the same values; insertion order is never significant.
type Variable struct {
	name   string
	domain map[int]struct{}
}

// New creates a Variable with the given name and initial domain values.
// Duplicate values in initial are collapsed; order is irrelevant.
// Returns ErrEmptyName if name is empty.
func New(name string, initial ...int) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	v := &Variable{name: name, domain: make(map[int]struct{}, len(initial))}
	for _, d := range initial {
		v.domain[d] = struct{}{}
	}
	return v, nil
}

// Name returns the Variable's unique name.
func (v *Variable) Name() string { return v.name }

// Domain returns a snapshot slice of the current domain values, sorted
// ascending for deterministic output. Mutating the returned slice does not
// affect v.
func (v *Variable) Domain() []int {
	out := make([]int, 0, len(v.domain))
	for d := range v.domain {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// Size returns the number of values currently in the domain.
func (v *Variable) Size() int { return len(v.domain) }

// Contains reports whether val is currently in the domain.
func (v *Variable) Contains(val int) bool {
	_, ok := v.domain[val]
	return ok
}

// Add inserts val into the domain. Idempotent.
func (v *Variable) Add(val int) { v.domain[val] = struct{}{} }

// AddMany inserts every value in vals into the domain. Idempotent.
func (v *Variable) AddMany(vals []int) {
	for _, val := range vals {
		v.domain[val] = struct{}{}
	}
}

// Remove deletes val from the domain if present. A no-op otherwise.
func (v *Variable) Remove(val int) { delete(v.domain, val) }

// RemoveMany deletes every value in vals from the domain, equivalent to
// iterated Remove.
func (v *Variable) RemoveMany(vals []int) {
	for _, val := range vals {
		delete(v.domain, val)
	}
}

// Clone returns an independent copy with the same name and domain values.
func (v *Variable) Clone() *Variable {
	clone := &Variable{name: v.name, domain: make(map[int]struct{}, len(v.domain))}
	for d := range v.domain {
		clone.domain[d] = struct{}{}
	}
	return clone
}

// Equal reports whether two Variables have the same name and the same
// domain set, regardless of any internal ordering.
func (v *Variable) Equal(other *Variable) bool {
	if other == nil {
		return false
	}
	if v.name != other.name {
		return false
	}
	if len(v.domain) != len(other.domain) {
		return false
	}
	for d := range v.domain {
		if _, ok := other.domain[d]; !ok {
			return false
		}
	}
	return true
}

// String renders "NAME: <name>\n - Domain: {v1, v2, ...}" with the domain
// sorted ascending, mirroring the constraint vertex display format.
func (v *Variable) String() string {
	values := v.Domain()
	parts := make([]string, len(values))
	for i, d := range values {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("NAME: %s\n - Domain: {%s}", v.name, strings.Join(parts, ", "))
}
