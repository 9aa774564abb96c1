// Package lychrel is a toolkit for exploring the Lychrel conjecture in any
// positional base from 2 to 61.
//
// What is in the box?
//
//	alphabet/     — the digit symbol set (0-9, A-Z, a-z) and ordinal lookups
//	number/       — validated digit-string numbers: increment, reverse-add, palindrome test
//	lychrel/      — reverse-and-add threads, depth-bounded classification, batch pools
//	seeds/        — consecutive seed ranges (count, digit-length or target stop)
//	export/       — thread, candidate-list and density-CSV writers
//	threadgraph/  — merge graph of threads, reachability, GraphML output
//	cmd/lychrel   — command-line driver (thread, check, seeds, search, run, graph)
//
// Quick example:
//
//	seed := number.MustNew("196", 10)
//	ok, _ := lychrel.IsCandidate(seed, 500) // true: no palindrome in 500 steps
//
// Numbers are digit strings, so there is no upper limit on their length and
// no big-integer arithmetic is involved. In base 10 the thread of 89
// reaches the palindrome 8813200023188 after 24 steps; 196 never does within
// any depth tried so far.
package lychrel
