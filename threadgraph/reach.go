package threadgraph

import "fmt"

// Option configures Reach via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*ReachOptions)

// ReachOptions holds parameters for Reach.
type ReachOptions struct {
	// MaxDepth, if > 0, stops exploring beyond this depth; 0 means no limit.
	MaxDepth int

	// OnVisit is called for every visited vertex in BFS order. Returning an
	// error aborts the walk.
	OnVisit func(id string, depth int) error

	err error
}

// DefaultOptions returns no depth limit and a no-op visit hook.
func DefaultOptions() ReachOptions {
	return ReachOptions{
		OnVisit: func(string, int) error { return nil },
	}
}

// WithMaxDepth limits the walk depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *ReachOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *ReachOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// ReachResult holds the outcome of a Reach walk:
//   - Order: vertices in visit order, starting with the start vertex.
//   - Depth: number of reverse-add steps separating each vertex from the start.
//   - Parent: the neighbor through which each vertex was discovered.
type ReachResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// queueItem pairs a vertex ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// Reach walks out-edges breadth-first from start, i.e. it lists every value
// whose thread passes through start, nearest first. Neighbors are expanded
// in ascending ID order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrVertexNotFound, ErrOptionViolation, or the error
// returned by OnVisit (wrapped).
func Reach(g *Graph, start string, opts ...Option) (*ReachResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, start)
	}

	res := &ReachResult{
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string),
	}
	queue := []queueItem{{id: start}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return nil, fmt.Errorf("threadgraph: OnVisit error at %q: %w", item.id, err)
		}

		next := item.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		nbrs, err := g.Successors(item.id)
		if err != nil {
			return nil, err
		}
		for _, nbr := range nbrs {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = next
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: next})
		}
	}

	return res, nil
}
