// Package kwok implements a maximum-weight bipartite matching engine using
// the Kuhn–Munkres primal-dual augmenting-path method with label adjustment.
//
// Given a left partition of size L_size, a right partition of size R_size
// (R_size ≥ L_size), and a non-negative integer-weighted adjacency list keyed
// by left-vertex index, Solve returns a Matching maximizing the sum of
// weights of matched edges. Every left vertex that can be matched with
// positive benefit is matched; the rest are explicitly marked Unmatched.
//
// # Algorithm
//
// The engine maintains per-vertex potentials (labels) for both partitions
// and a per-right-vertex slack, preserving feasibility
// (LeftLabel[l]+RightLabel[r] ≥ w(l,r)) at every step. Each phase starts from
// one unmatched left vertex and alternates:
//
//   - Expansion: BFS over tight edges (LeftLabel[l]+RightLabel[r] = w(l,r)),
//     recording the best slack for non-tight edges reached from the frontier.
//   - Adjustment: when expansion stalls, shift labels by δ = the minimum
//     recorded slack, which tightens at least one new edge or closes an
//     augmenting target, then resume expansion.
//
// A designated "virtual" unmatched right vertex and a zero-cost virtual edge
// from any zero-label left vertex guarantee that every phase terminates in
// an augmenting path, even before a real path exists; virtual pairings are
// stripped during totalization if no real edge explains them.
//
// Complexity: each phase runs in O(R_size) amortized expansion/adjustment
// work; O(L_size) phases; overall O(L_size · R_size) for dense inputs,
// O(L_size·(L_size+E)) style bound for sparse ones, matching the classical
// Hungarian/Kuhn–Munkres bound of O(L_size² · R_size) in the worst case.
// Memory: O(L_size + R_size + E).
//
// # Concurrency
//
// Solve is single-threaded and holds no state across calls; distinct calls
// may run concurrently without coordination.
//
// # Errors
//
//	ErrInvalidInput       – malformed input (see errors.go).
//	ErrInvariantViolation – a broken engine invariant (bug, not user error).
//
// See DESIGN.md for the two source ambiguities this implementation resolves
// explicitly rather than guessing silently.
package kwok
