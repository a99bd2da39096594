package solver

import (
	"fmt"
	"strings"
)

// VariableSnapshot is a value-independent copy of one variable's name and
// domain at the moment a solution was produced. It outlives the graph that
// produced it.
type VariableSnapshot struct {
	Name   string
	Domain []int
}

// String renders "name = {v1, v2, ...}" with the domain in snapshot order.
func (s VariableSnapshot) String() string {
	parts := make([]string, len(s.Domain))
	for i, d := range s.Domain {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("%s = {%s}", s.Name, strings.Join(parts, ", "))
}

// Equal reports whether two snapshots carry the same name and the same
// domain values in the same order.
func (s VariableSnapshot) Equal(other VariableSnapshot) bool {
	if s.Name != other.Name || len(s.Domain) != len(other.Domain) {
		return false
	}
	for i, d := range s.Domain {
		if other.Domain[i] != d {
			return false
		}
	}
	return true
}

// classification is the outcome of checkAnswer for one graph instance.
type classification int

const (
	indeterminate classification = iota
	determinateInfeasible
	determinateUnique
)
