package kwok

// augment walks the right→left→right parent chain back to the phase's
// source left vertex, flipping pair assignments along the way. It increases
// the matching size by exactly one and never touches labels or slacks.
func (s *solver) augment(r int) {
	curR := r
	for curR != Unmatched {
		l := s.rightParent[curR]
		prevR := s.leftPair[l]
		s.leftPair[l] = curR
		s.rightPair[curR] = l
		curR = prevR
	}
}

// advance marks r visited, clears its on-edge status, and either extends
// the frontier (r already matched: enqueue its match) or augments (r
// unmatched: apply the augmenting path ending at r). Returns true iff an
// augmenting path was applied.
func (s *solver) advance(r int) bool {
	s.rightVisited[r] = true
	s.visitedRights = append(s.visitedRights, r)
	s.rightOnEdge[r] = false

	if s.rightPair[r] != Unmatched {
		s.enqueueLeft(s.rightPair[r])
		return false
	}

	s.augment(r)
	return true
}
