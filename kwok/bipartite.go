package kwok

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"
)

// FromGraph extracts a Solve-ready adjacency list from a bipartite
// core.Graph, given the explicit vertex-ID partitions leftIDs and rightIDs
// (as produced by, e.g., builder.RandomBipartite). leftIndex maps each
// returned Matching.LeftPairs index back to its source vertex ID, and
// rightIndex does the same for RightPairs.
//
// Cross-partition edges are read via g.Neighbors; every parallel edge
// between the same pair becomes its own entry in adj (whether parallel edges
// exist at all is governed upstream by WithMultiEdges). Neighbors of a left
// vertex that are not in rightIDs are skipped, not rejected.
//
// Complexity: O(sum of degrees of leftIDs).
func FromGraph(g *core.Graph, leftIDs, rightIDs []string) (adj [][]Edge, leftIndex, rightIndex []string, err error) {
	if g == nil {
		return nil, nil, nil, fmt.Errorf("%w: nil graph", ErrInvalidInput)
	}

	rightPos := make(map[string]int, len(rightIDs))
	for i, id := range rightIDs {
		rightPos[id] = i
	}

	adj = make([][]Edge, len(leftIDs))
	for l, id := range leftIDs {
		neighbors, nerr := g.Neighbors(id)
		if nerr != nil {
			return nil, nil, nil, fmt.Errorf("%w: Neighbors(%s): %v", ErrInvalidInput, id, nerr)
		}
		for _, e := range neighbors {
			other := e.To
			if other == id {
				other = e.From
			}
			r, ok := rightPos[other]
			if !ok {
				continue // not part of the right partition; ignore (e.g. a mirrored reverse edge's own source)
			}
			adj[l] = append(adj[l], Edge{To: r, Weight: e.Weight})
		}
		sort.Slice(adj[l], func(i, j int) bool { return adj[l][i].To < adj[l][j].To })
	}

	leftIndex = append([]string(nil), leftIDs...)
	rightIndex = append([]string(nil), rightIDs...)

	return adj, leftIndex, rightIndex, nil
}

// ToGraph renders a Matching back into a fresh, weighted core.Graph
// restricted to the realized (non-Unmatched) pairs, with vertex IDs taken
// from leftIndex/rightIndex as returned by FromGraph and edge weights taken
// from the adj originally passed to FromGraph/Solve.
//
// Complexity: O(L_size + E).
func ToGraph(m Matching, adj [][]Edge, leftIndex, rightIndex []string) (*core.Graph, error) {
	if len(m.LeftPairs) != len(leftIndex) {
		return nil, fmt.Errorf("%w: len(LeftPairs)=%d != len(leftIndex)=%d", ErrInvalidInput, len(m.LeftPairs), len(leftIndex))
	}
	if len(m.RightPairs) != len(rightIndex) {
		return nil, fmt.Errorf("%w: len(RightPairs)=%d != len(rightIndex)=%d", ErrInvalidInput, len(m.RightPairs), len(rightIndex))
	}

	g := core.NewGraph(core.WithWeighted())
	for _, id := range leftIndex {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("AddVertex(%s): %w", id, err)
		}
	}
	for _, id := range rightIndex {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("AddVertex(%s): %w", id, err)
		}
	}

	for l, r := range m.LeftPairs {
		if r == Unmatched {
			continue
		}
		var weight int64
		for _, e := range adj[l] {
			if e.To == r {
				weight = e.Weight
				break
			}
		}
		if _, err := g.AddEdge(leftIndex[l], rightIndex[r], weight); err != nil {
			return nil, fmt.Errorf("AddEdge(%s,%s): %w", leftIndex[l], rightIndex[r], err)
		}
	}

	return g, nil
}
