package threadgraph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an empty digit string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("threadgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("threadgraph: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("threadgraph: self-loop not allowed")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("threadgraph: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("threadgraph: invalid option supplied")
)

// Vertex is one digit string of some thread.
type Vertex struct {
	// ID is the digit string.
	ID string

	// Seed is true if the value started at least one thread.
	Seed bool
}

// Edge links a thread value to the value it was produced from.
type Edge struct {
	// ID is "e1", "e2", … in insertion order.
	ID string

	// From is the later value (reverse-add result).
	From string

	// To is the earlier value.
	To string
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (the thread of zero maps 0 to 0).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed, unweighted graph of digit strings.
//
// out[from][to] and in[to][from] hold the edge ID; both maps always have a
// bucket for every vertex.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge
	out        map[string]map[string]string
	in         map[string]map[string]string
}

// NewGraph creates an empty Graph.
// By default self-loops are rejected.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]string),
		in:       make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
