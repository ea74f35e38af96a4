package kwok

// solver holds all per-invocation state for one Solve call. It is allocated
// once at call entry and discarded at return; no state survives across
// calls, so distinct Solve invocations never interfere.
type solver struct {
	lSize, rSize int
	adj          [][]Edge

	leftLabel  []int64
	rightLabel []int64
	slack      []int64

	leftPair  []int
	rightPair []int

	rightParent  []int
	rightVisited []bool
	rightOnEdge  []bool

	// Append-only per-phase logs: the ONLY structures traversed when
	// resetting for the next phase, bounding reset cost by the work of the
	// phase just finished rather than by |R|.
	visitedLefts  []int
	visitedRights []int
	onEdgeRights  []int

	queue     []int
	queueHead int

	firstUnmatchedR int
	cfg             config
}

func newSolver(lSize, rSize int, adj [][]Edge, cfg config) *solver {
	s := &solver{
		lSize: lSize,
		rSize: rSize,
		adj:   adj,
		cfg:   cfg,
	}
	s.leftLabel, s.rightLabel = initLabels(lSize, rSize, adj)
	s.slack = make([]int64, rSize)
	for r := range s.slack {
		s.slack[r] = infSlack
	}
	s.leftPair = make([]int, lSize)
	for l := range s.leftPair {
		s.leftPair[l] = Unmatched
	}
	s.rightPair = make([]int, rSize)
	for r := range s.rightPair {
		s.rightPair[r] = Unmatched
	}
	s.rightParent = make([]int, rSize)
	for r := range s.rightParent {
		s.rightParent[r] = Unmatched
	}
	s.rightVisited = make([]bool, rSize)
	s.rightOnEdge = make([]bool, rSize)
	s.queue = make([]int, 0, rSize)
	s.visitedLefts = make([]int, 0, rSize)
	s.visitedRights = make([]int, 0, rSize)
	s.onEdgeRights = make([]int, 0, rSize)

	return s
}

// enqueueLeft appends l to the BFS queue and to the visited-lefts log.
func (s *solver) enqueueLeft(l int) {
	s.queue = append(s.queue, l)
	s.visitedLefts = append(s.visitedLefts, l)
}

// dequeueLeft pops the next left vertex from the queue. Callers must check
// queueEmpty first.
func (s *solver) dequeueLeft() int {
	l := s.queue[s.queueHead]
	s.queueHead++
	return l
}

func (s *solver) queueEmpty() bool {
	return s.queueHead >= len(s.queue)
}

// markOnEdge idempotently adds r to the on-edge set and its log.
func (s *solver) markOnEdge(r int) {
	if !s.rightOnEdge[r] {
		s.rightOnEdge[r] = true
		s.onEdgeRights = append(s.onEdgeRights, r)
	}
}

// resetPhase clears per-phase frontier state per spec.md §4.6 steps 1-4,
// touching only the previous phase's logs, never sweeping the full arrays.
func (s *solver) resetPhase() {
	for _, r := range s.visitedRights {
		s.rightVisited[r] = false
	}
	for _, r := range s.onEdgeRights {
		s.rightOnEdge[r] = false
		s.slack[r] = infSlack
	}
	s.visitedLefts = s.visitedLefts[:0]
	s.visitedRights = s.visitedRights[:0]
	s.onEdgeRights = s.onEdgeRights[:0]
	s.queue = s.queue[:0]
	s.queueHead = 0
}
