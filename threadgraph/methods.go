package threadgraph

import (
	"fmt"
	"sort"
	"strconv"
)

// AddVertex inserts a vertex if missing (idempotent).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// MarkSeed adds id if needed and flags it as a thread seed.
func (g *Graph) MarkSeed(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id).Seed = true

	return nil
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return *v, nil
}

// AddEdge links from → to, creating both vertices as needed, and returns the
// edge ID. Adding an existing edge returns its ID and no error.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if eid, ok := g.out[from][to]; ok {
		return eid, nil
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.out[from][to] = eid
	g.in[to][from] = eid

	return eid, nil
}

// HasEdge reports whether from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Successors returns the sorted targets of out-edges of id: the values id
// was produced from.
func (g *Graph) Successors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.out[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedKeys(bucket), nil
}

// Predecessors returns the sorted sources of in-edges of id: the values
// produced from id.
func (g *Graph) Predecessors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.in[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedKeys(bucket), nil
}

// Degree returns the in- and out-degree of id.
func (g *Graph) Degree(id string) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(g.in[id]), len(g.out[id]), nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Seeds returns the IDs flagged by MarkSeed, sorted ascending.
func (g *Graph) Seeds() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var ids []string
	for id, v := range g.vertices {
		if v.Seed {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// FromThreads builds a graph from digit-string threads (seed first).
// Loops are allowed so the thread of zero can be represented.
func FromThreads(threads [][]string) (*Graph, error) {
	g := NewGraph(WithLoops())
	for i, th := range threads {
		if len(th) == 0 {
			continue
		}
		if err := g.MarkSeed(th[0]); err != nil {
			return nil, fmt.Errorf("threadgraph: thread %d: %w", i, err)
		}
		for k := 1; k < len(th); k++ {
			if _, err := g.AddEdge(th[k], th[k-1]); err != nil {
				return nil, fmt.Errorf("threadgraph: thread %d step %d: %w", i, k, err)
			}
		}
	}

	return g, nil
}

// addVertexLocked returns the vertex, creating it and its adjacency buckets.
// Caller holds g.mu for writing.
func (g *Graph) addVertexLocked(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id}
	g.vertices[id] = v
	g.out[id] = make(map[string]string)
	g.in[id] = make(map[string]string)

	return v
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// edgeSeq parses the numeric part of an "eN" edge ID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}
