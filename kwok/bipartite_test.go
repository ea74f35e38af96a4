package kwok_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/kwok"
)

// TestFromGraphToGraphRoundTrip builds a small bipartite core.Graph by hand,
// extracts it with FromGraph, solves it, and renders the result back with
// ToGraph, checking the rendered edges match the solved pairing exactly.
func TestFromGraphToGraphRoundTrip(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	leftIDs := []string{"L0", "L1"}
	rightIDs := []string{"R0", "R1"}
	for _, id := range append(append([]string{}, leftIDs...), rightIDs...) {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge("L0", "R0", 4)
	require.NoError(t, err)
	_, err = g.AddEdge("L0", "R1", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("L1", "R0", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("L1", "R1", 4)
	require.NoError(t, err)

	adj, leftIndex, rightIndex, err := kwok.FromGraph(g, leftIDs, rightIDs)
	require.NoError(t, err)
	require.Len(t, adj, 2)

	m, err := kwok.Solve(len(leftIDs), len(rightIDs), adj)
	require.NoError(t, err)
	require.Equal(t, int64(8), m.TotalWeight)
	require.Equal(t, []int{0, 1}, m.LeftPairs)

	out, err := kwok.ToGraph(m, adj, leftIndex, rightIndex)
	require.NoError(t, err)
	require.True(t, out.HasEdge("L0", "R0"))
	require.True(t, out.HasEdge("L1", "R1"))
	require.False(t, out.HasEdge("L0", "R1"))
}

// TestFromGraphRejectsNilGraph covers the ErrInvalidInput path.
func TestFromGraphRejectsNilGraph(t *testing.T) {
	t.Parallel()

	_, _, _, err := kwok.FromGraph(nil, nil, nil)
	require.ErrorIs(t, err, kwok.ErrInvalidInput)
}
