// Package lychrel runs the reverse-and-add process on based numbers and
// classifies seeds as Lychrel candidates.
//
// What is a Lychrel thread?
//
//	Starting from a seed, repeatedly replace the value by value + reverse(value).
//	The resulting sequence is the seed's thread. It stops at the first
//	palindrome (inclusive) or after depth steps, whichever comes first:
//	  4    → 8                          (palindrome after 1 step)
//	  89   → 187 → 968 → … → 8813200023188 (24 steps)
//	  196  → 887 → 1675 → 7436 → …      (no palindrome known)
//
//	A seed whose thread exhausts the depth bound without a palindrome is a
//	Lychrel candidate.
//
// State machine (per seed):
//
//	Running(seed, k) ──step──▶ Running(next, k+1)
//	        │                      │
//	        ├─ palindrome ─────────┴─▶ PalindromeFound
//	        └─ k == depth ───────────▶ DepthExceeded   (candidate)
//
// API:
//   - NewThread / Thread.Next / Thread.All — lazy, single-use cursor over a thread.
//   - Run          — terminal state, step count and last value for one seed.
//   - IsCandidate  — Run reduced to a boolean.
//   - ClassifyBatch — digit strings of the candidates among many seeds, in
//     input order; optionally spread over a worker pool (WithWorkers).
//   - ClassifyAll  — full Result for every seed, in input order.
//
// Every seed is independent and every step is a pure function, so the only
// termination guarantee is the depth bound; there is no cancellation.
package lychrel
