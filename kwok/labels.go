package kwok

import "math"

// infSlack is the +∞ sentinel for Slack[r]: the widest value of the chosen
// integer type, per spec.md §9's guidance on the +∞ sentinel. Labels and
// slacks are bounded by L_size·W_max in the worst case, far below this.
const infSlack = math.MaxInt64

// initLabels computes the initial LeftLabel and RightLabel arrays.
// LeftLabel[l] is the maximum weight among edges incident to l (0 if l has
// no edges); RightLabel[r] is 0 for every r. This makes every edge initially
// feasible, with at least one tight edge per non-isolated left vertex.
func initLabels(lSize, rSize int, adj [][]Edge) (leftLabel, rightLabel []int64) {
	leftLabel = make([]int64, lSize)
	for l := 0; l < lSize; l++ {
		var maxW int64
		for _, e := range adj[l] {
			if e.Weight > maxW {
				maxW = e.Weight
			}
		}
		leftLabel[l] = maxW
	}
	rightLabel = make([]int64, rSize)
	return leftLabel, rightLabel
}
