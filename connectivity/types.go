package connectivity

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Reachable.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrStartNotFound is returned when the start name names no vertex.
	ErrStartNotFound = errors.New("connectivity: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("connectivity: invalid option supplied")
)

// Option configures Reachable via functional arguments.
type Option func(*options)

type options struct {
	ctx            context.Context
	onVisit        func(name string, depth int) error
	maxDepth       int
	filterNeighbor func(curr, neighbor string) bool
	err            error
}

func defaultOptions() options {
	return options{
		ctx:            context.Background(),
		onVisit:        func(string, int) error { return nil },
		filterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked when a vertex is first visited;
// returning an error aborts the walk and that error is propagated.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth stops exploring beyond depth d (exclusive). d == 0 means no
// limit; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithFilterNeighbor skips an edge curr -> neighbor when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.filterNeighbor = fn
		}
	}
}

// Result holds the outcome of a reachability walk: the order vertices were
// first visited in, and their depth and BFS-tree parent relative to the
// start vertex.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the path from the start vertex to dest. Returns an
// error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("connectivity: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok || prev == "" {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
