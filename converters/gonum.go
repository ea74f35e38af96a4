package converters

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlath/kwok"
)

// ToGonum builds a gonum weighted undirected graph from a kwok-shaped
// bipartite adjacency list, letting callers run any gonum/graph algorithm
// (shortest paths, connectivity, community detection) over the same
// structure kwok.Solve consumes.
//
// Left vertex l becomes node ID l; right vertex r becomes node ID lSize+r,
// so the two partitions never collide in gonum's single node-ID space.
func ToGonum(lSize, rSize int, adj [][]kwok.Edge) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)

	for l := 0; l < lSize; l++ {
		g.AddNode(simple.Node(l))
	}
	for r := 0; r < rSize; r++ {
		g.AddNode(simple.Node(lSize + r))
	}

	for l := 0; l < lSize; l++ {
		for _, e := range adj[l] {
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(l),
				T: simple.Node(lSize + e.To),
				W: float64(e.Weight),
			})
		}
	}

	return g
}

// RightNodeID converts a right-partition index back into the gonum node ID
// space used by ToGonum.
func RightNodeID(lSize, r int) int64 { return int64(lSize + r) }
