package connectivity

import (
	"github.com/katalvlaran/arcsolve/cspgraph"
)

type queueItem struct {
	name   string
	depth  int
	parent string // empty for the start vertex
}

type walker struct {
	graph   *cspgraph.Graph
	opts    options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Reachable walks g breadth-first from start, crossing variable-constraint
// edges without regard to vertex kind, and returns every vertex reached
// (including start itself) in visit order along with depth and parent
// links. Returns ErrGraphNil or ErrStartNotFound for invalid input, or any
// error from a user-supplied OnVisit hook or invalid Option.
func Reachable(g *cspgraph.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, ErrStartNotFound
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, 16),
		visited: make(map[string]bool, 16),
		res: &Result{
			Order:  make([]string, 0, 16),
			Depth:  make(map[string]int, 16),
			Parent: make(map[string]string, 16),
		},
	}
	w.enqueue(start, 0, "")
	return w.res, w.loop()
}

func (w *walker) enqueue(name string, depth int, parent string) {
	w.visited[name] = true
	w.res.Parent[name] = parent
	w.queue = append(w.queue, queueItem{name: name, depth: depth, parent: parent})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.opts.onVisit(item.name, item.depth); err != nil {
			return err
		}
		w.res.Order = append(w.res.Order, item.name)
		w.res.Depth[item.name] = item.depth

		if w.opts.maxDepth > 0 && item.depth >= w.opts.maxDepth {
			continue
		}
		for _, next := range neighboursOf(w.graph, item.name) {
			if w.visited[next] {
				continue
			}
			if !w.opts.filterNeighbor(item.name, next) {
				continue
			}
			w.enqueue(next, item.depth+1, item.name)
		}
	}
	return nil
}

// neighboursOf returns the adjacent vertex names of name regardless of
// whether it is a variable or a constraint.
func neighboursOf(g *cspgraph.Graph, name string) []string {
	if _, ok := g.GetVariable(name); ok {
		return g.ConstraintNeighbours(name)
	}
	if _, ok := g.GetConstraint(name); ok {
		return g.VariableNeighbours(name)
	}
	return nil
}
