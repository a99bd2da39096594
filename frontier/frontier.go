// Package frontier implements the two-tier deduplicating work queue that
// drives arc consistency: unary arcs drain completely before any n-ary arc
// is dispatched, since unary constraints tend to prune domains first and
// most cheaply.
package frontier

import "github.com/katalvlaran/arcsolve/arc"

// Mode selects the dispatch discipline applied within each tier.
type Mode int

const (
	// FIFOMode dispatches each tier strictly first-in-first-out.
	FIFOMode Mode = iota
	// could add a priority-ordered mode
)

// Frontier holds pending ARC work, deduplicated by canonical key.
//
// Frontier carries no locking of its own; the engine that owns a Frontier
// is single-threaded and synchronous.
type Frontier struct {
	mode     Mode
	unary    []arc.ARC
	nary     []arc.ARC
	presence map[string]struct{}
}

// New returns an empty Frontier in FIFOMode.
func New() *Frontier {
	return NewWithMode(FIFOMode)
}

// NewWithMode returns an empty Frontier with the given dispatch mode.
func NewWithMode(mode Mode) *Frontier {
	return &Frontier{mode: mode, presence: make(map[string]struct{})}
}

// Mode returns the dispatch mode this Frontier was created with.
func (f *Frontier) Mode() Mode { return f.mode }

// Push enqueues a into the unary or n-ary tier according to whether it has
// other variables. A no-op if an ARC with the same canonical key is already
// present in either tier.
func (f *Frontier) Push(a arc.ARC) {
	key := a.Key()
	if _, dup := f.presence[key]; dup {
		return
	}
	f.presence[key] = struct{}{}
	if a.IsUnary() {
		f.unary = append(f.unary, a)
	} else {
		f.nary = append(f.nary, a)
	}
}

// Pop removes and returns the next ARC: the head of the unary tier if
// non-empty, else the head of the n-ary tier. The second return value is
// false if the Frontier was empty; callers must check Empty before relying
// on the result otherwise.
func (f *Frontier) Pop() (arc.ARC, bool) {
	if len(f.unary) > 0 {
		head := f.unary[0]
		f.unary = f.unary[1:]
		delete(f.presence, head.Key())
		return head, true
	}
	if len(f.nary) > 0 {
		head := f.nary[0]
		f.nary = f.nary[1:]
		delete(f.presence, head.Key())
		return head, true
	}
	return arc.ARC{}, false
}

// Size returns the total number of pending ARCs across both tiers.
func (f *Frontier) Size() int { return len(f.unary) + len(f.nary) }

// Empty reports whether both tiers are empty.
func (f *Frontier) Empty() bool { return f.Size() == 0 }

// Clone returns an independent copy that shares no backing storage with f:
// both tiers and the presence set are duplicated, preserving tier order.
func (f *Frontier) Clone() *Frontier {
	out := &Frontier{
		mode:     f.mode,
		unary:    make([]arc.ARC, len(f.unary)),
		nary:     make([]arc.ARC, len(f.nary)),
		presence: make(map[string]struct{}, len(f.presence)),
	}
	copy(out.unary, f.unary)
	copy(out.nary, f.nary)
	for k := range f.presence {
		out.presence[k] = struct{}{}
	}
	return out
}
