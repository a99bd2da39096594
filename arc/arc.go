// Package arc defines the ARC work-item: a focal variable, an ordered list
// of other variables, and the constraint that relates them, plus the
// canonical key used to deduplicate equivalent work in a Frontier.
package arc

import (
	"sort"
	"strings"

	"github.com/katalvlaran/arcsolve/constraint"
	"github.com/katalvlaran/arcsolve/variable"
)

// ARC is one unit of arc-consistency work: check MainVar's domain against
// Constraint, given the current domains of OtherVars (unary iff OtherVars is
// empty). References are non-owning and only valid for the lifetime of the
// graph that produced MainVar/OtherVars/Constraint.
type ARC struct {
	MainVar    *variable.Variable
	OtherVars  []*variable.Variable
	Constraint *constraint.Constraint
}

// New builds an ARC from its three constituents. OtherVars order is
// preserved as given; the canonical Key ignores that order.
func New(mainVar *variable.Variable, otherVars []*variable.Variable, c *constraint.Constraint) ARC {
	return ARC{MainVar: mainVar, OtherVars: otherVars, Constraint: c}
}

// IsUnary reports whether this ARC has no other variables.
func (a ARC) IsUnary() bool { return len(a.OtherVars) == 0 }

// Key returns the canonical deduplication key:
//
//	name(MainVar) ⊕ "-" ⊕ sorted_unique(names(OtherVars)) ⊕ "-" ⊕ name(Constraint)
//
// Two ARCs with the same key perform the same check — the stock predicates
// are symmetric in their "others" argument, so argument order never matters.
// User-supplied predicates that are NOT symmetric in others must either
// tolerate this equivalence or the caller must strengthen the key.
func (a ARC) Key() string {
	names := make([]string, 0, len(a.OtherVars))
	seen := make(map[string]struct{}, len(a.OtherVars))
	for _, o := range a.OtherVars {
		if _, dup := seen[o.Name()]; dup {
			continue
		}
		seen[o.Name()] = struct{}{}
		names = append(names, o.Name())
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(a.MainVar.Name())
	b.WriteByte('-')
	b.WriteString(strings.Join(names, ","))
	b.WriteByte('-')
	b.WriteString(a.Constraint.Name())
	return b.String()
}

// Equal reports whether two ARCs refer to the same work item, either by
// pointer equality of all three referents or by an equal canonical Key.
// Within one graph both conditions necessarily agree, since names are
// unique.
func (a ARC) Equal(other ARC) bool {
	if a.MainVar == other.MainVar && a.Constraint == other.Constraint && sameVarSlice(a.OtherVars, other.OtherVars) {
		return true
	}
	return a.Key() == other.Key()
}

func sameVarSlice(a, b []*variable.Variable) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
