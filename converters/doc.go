// Package converters adapts kwok's bipartite adjacency lists to
// gonum.org/v1/gonum/graph, the one
// external graph representation actually wired in this module (see
// DESIGN.md for why dominikbraun/graph, hmdsefi/gograph, and yourbasic/graph
// are not).
package converters
