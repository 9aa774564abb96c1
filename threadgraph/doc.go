// Package threadgraph merges many Lychrel threads into one directed graph
// and exports it as GraphML.
//
// Threads of different seeds often join: 196, 295, 394, 493, 592, 691 and 790
// all reach 887 after one step. Storing every thread as a path and unifying
// equal values turns a thread file into a forest whose merge points and
// feeder sets can be queried.
//
// Graph model:
//
//	Vertices are digit strings. For every consecutive pair (prev, next) in a
//	thread the graph holds the edge next → prev, so out-edges of a value lead
//	to the values that produced it:
//
//	  887 ──▶ 196
//	  887 ──▶ 295
//	  1675 ─▶ 887
//
//	Edges are unweighted and unique per (from, to); adding an existing edge
//	is a no-op. Self-loops (0 → 0) are rejected unless WithLoops is given.
//
// Operations:
//   - FromThreads  — build a graph from ReadThreads output.
//   - Reach        — breadth-first walk over out-edges: every value whose
//     thread passes through the start value, with depth and parent links.
//   - WriteGraphML — directed GraphML document with a boolean "seed" attribute.
//
// Concurrency:
//
//	All Graph methods are safe for concurrent use; a single sync.RWMutex
//	guards vertices, edges and adjacency. Vertices() and Edges() return
//	sorted snapshots for reproducible output.
package threadgraph
