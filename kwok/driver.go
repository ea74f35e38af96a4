package kwok

import "fmt"

// Solve computes a maximum-weight matching between a left partition of size
// lSize and a right partition of size rSize (rSize ≥ lSize), given adj[l]
// as the sequence of (right, weight) edges incident to left vertex l.
//
// Solve validates its input before mutating any state, runs an initial
// greedy seeding pass, then processes each still-unmatched left vertex
// through one phase of the BFS-Search/Adjuster loop until an augmenting
// path closes it, and finally strips any "virtual" pairings that are not
// backed by a real edge. See the package doc for the algorithm overview.
//
// Complexity: O(L_size · R_size) amortized for dense inputs; O(L_size+R_size+E)
// space.
func Solve(lSize, rSize int, adj [][]Edge, opts ...Option) (Matching, error) {
	if err := validate(lSize, rSize, adj); err != nil {
		return Matching{}, err
	}

	cfg := newConfig(opts...)
	s := newSolver(lSize, rSize, adj, cfg)

	seedGreedy(s)

	phase := 0
	for l := 0; l < lSize; l++ {
		if s.leftPair[l] != Unmatched {
			continue
		}
		startPhase(s, l)
		if err := s.runPhase(); err != nil {
			return Matching{}, err
		}
		phase++
		if cfg.onAugment != nil {
			cfg.onAugment(phase, l)
		}
	}

	m := totalize(s)

	if cfg.audit {
		if err := auditFeasibility(s); err != nil {
			return Matching{}, err
		}
	}

	return m, nil
}

// validate checks R_size ≥ L_size, every edge's right index is in
// [0, rSize), and every weight is non-negative, before any engine state is
// constructed.
func validate(lSize, rSize int, adj [][]Edge) error {
	if lSize < 0 || rSize < 0 {
		return fmt.Errorf("%w: negative size (lSize=%d, rSize=%d)", ErrInvalidInput, lSize, rSize)
	}
	if rSize < lSize {
		return fmt.Errorf("%w: rSize=%d < lSize=%d", ErrInvalidInput, rSize, lSize)
	}
	if len(adj) != lSize {
		return fmt.Errorf("%w: len(adj)=%d != lSize=%d", ErrInvalidInput, len(adj), lSize)
	}
	for l, edges := range adj {
		for _, e := range edges {
			if e.To < 0 || e.To >= rSize {
				return fmt.Errorf("%w: adj[%d] references right index %d outside [0,%d)", ErrInvalidInput, l, e.To, rSize)
			}
			if e.Weight < 0 {
				return fmt.Errorf("%w: adj[%d] has negative weight %d", ErrInvalidInput, l, e.Weight)
			}
		}
	}
	return nil
}

// seedGreedy performs the initial greedy seeding pass (spec.md §4.6): for
// each left in order, match it to the first unmatched right reached via a
// tight edge, then move to the next left. This bootstraps a feasible
// partial matching and reduces the number of phases needed.
func seedGreedy(s *solver) {
	for l := 0; l < s.lSize; l++ {
		for _, e := range s.adj[l] {
			r := e.To
			if s.rightPair[r] == Unmatched && s.leftLabel[l]+s.rightLabel[r] == e.Weight {
				s.leftPair[l] = r
				s.rightPair[r] = l
				break
			}
		}
	}
}

// startPhase resets per-phase frontier state and seeds the phase from l0,
// per spec.md §4.6 steps 1-5.
func startPhase(s *solver, l0 int) {
	s.resetPhase()
	s.enqueueLeft(l0)
	s.firstUnmatchedR = firstUnmatchedRight(s)
}

// firstUnmatchedRight returns the first right vertex (by index) with
// RightPair[r] = Unmatched. The caller guarantees at least one exists: a
// phase only runs while some left remains unmatched, and lSize ≤ rSize.
func firstUnmatchedRight(s *solver) int {
	for r := 0; r < s.rSize; r++ {
		if s.rightPair[r] == Unmatched {
			return r
		}
	}
	return Unmatched
}

// totalize strips virtual pairings (those with no supporting real edge) and
// sums the weights of the remaining real matched edges, per spec.md §4.7.
// When adj[l] holds several edges to the paired right, the weight of the
// first one in stored order is counted.
func totalize(s *solver) Matching {
	var total int64
	for l := 0; l < s.lSize; l++ {
		r := s.leftPair[l]
		if r == Unmatched {
			continue
		}
		real := false
		for _, e := range s.adj[l] {
			if e.To == r {
				total += e.Weight
				real = true
				break
			}
		}
		if !real {
			s.leftPair[l] = Unmatched
			s.rightPair[r] = Unmatched
		}
	}

	return Matching{
		LeftPairs:   s.leftPair,
		RightPairs:  s.rightPair,
		TotalWeight: total,
	}
}

// auditFeasibility rechecks LeftLabel[l]+RightLabel[r] ≥ w(l,r) for every
// edge. Enabled only via WithAudit, since it costs an extra O(E) pass.
func auditFeasibility(s *solver) error {
	for l := 0; l < s.lSize; l++ {
		for _, e := range s.adj[l] {
			if s.leftLabel[l]+s.rightLabel[e.To] < e.Weight {
				return fmt.Errorf("%w: feasibility broken at left=%d right=%d", ErrInvariantViolation, l, e.To)
			}
		}
	}
	return nil
}
