// Package graph (lvlath) is an in-memory toolkit for building and matching
// graphs in Go.
//
// Subpackages of interest to this module:
//
//	core/       — thread-safe Graph, Vertex, Edge primitives
//	builder/    — deterministic bipartite fixture constructors
//	              (CompleteBipartite, RandomBipartite)
//	kwok/       — maximum-weight bipartite matching (Kuhn–Munkres /
//	              "Kwok" label-adjustment algorithm)
//	converters/ — adapters between core.Graph and gonum.org/v1/gonum/graph
//	internal/   — logging, configuration, persistence, and HTTP transport
//	              for cmd/kwokmatch
//	cmd/kwokmatch/ — CLI and HTTP service entry point wrapping kwok.Solve
package graph
