// Package seeds enumerates consecutive based numbers to feed a Lychrel search.
//
// Generate starts at a literal digit string and keeps incrementing until
// exactly one stop condition holds:
//
//	Count(n)        — n increments, so n+1 values including the start.
//	MinDigits(n)    — until the last value has at least n digits (inclusive).
//	Target(digits)  — until the value spelled by digits appears (inclusive).
//
// Example:
//
//	s, _ := seeds.Generate("1", 10, seeds.Count(5))  // 1 2 3 4 5 6
//	s, _ = seeds.Generate("1", 2, seeds.MinDigits(3)) // 1 10 11 100
//	s, _ = seeds.Generate("5E", 16, seeds.Target("61")) // 5E 5F 60 61
//
// Output length is bounded only by the stop condition. Seq is the lazy form
// for ranges too large to hold in memory.
package seeds
