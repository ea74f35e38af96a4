// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_random_bipartite.go - implementation of RandomBipartite(n1,n2,p) constructor.
//
// Canonical model: Erdős–Rényi-like bipartite generator. Each cross-pair
// L_i—R_j (i in 0..n1-1, j in 0..n2-1) is included independently with
// probability p.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//   - Adds left partition IDs "{leftPrefix}{i}", right partition IDs "{rightPrefix}{j}".
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Mirrors R_j→L_i only if g.Directed().
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n1+n2) vertices + O(n1*n2) Bernoulli trials.
//   - Space: O(n1+n2) extra for ID slices.
//
// Determinism:
//   - Stable vertex order and stable trial order (i asc over left, j asc over right).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

const (
	methodRandomBipartite = "RandomBipartite"
	probMin               = 0.0
	probMax               = 1.0
)

// RandomBipartite returns a Constructor that samples an Erdős–Rényi-like
// bipartite graph over partitions of size n1 and n2 with independent
// cross-edge probability p.
func RandomBipartite(n1, n2 int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodRandomBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomBipartite, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomBipartite, ErrNeedRandSource)
		}

		lp, rp := cfg.leftPrefix, cfg.rightPrefix

		leftIDs := make([]string, n1)
		for i := 0; i < n1; i++ {
			id := fmt.Sprintf("%s%d", lp, i)
			leftIDs[i] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomBipartite, id, err)
			}
		}

		rightIDs := make([]string, n2)
		for j := 0; j < n2; j++ {
			id := fmt.Sprintf("%s%d", rp, j)
			rightIDs[j] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomBipartite, id, err)
			}
		}

		useWeight := g.Weighted()
		directed := g.Directed()
		rng := cfg.rng

		for i := 0; i < n1; i++ {
			u := leftIDs[i]
			for j := 0; j < n2; j++ {
				v := rightIDs[j]

				var include bool
				switch {
				case rng == nil:
					include = p == 1.0
				default:
					include = rng.Float64() <= p
				}
				if !include {
					continue
				}

				var w int64
				if useWeight {
					w = cfg.weightFn(rng)
				}

				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomBipartite, u, v, w, err)
				}
				if directed {
					if _, err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomBipartite, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}
