// Package kwok_test provides examples demonstrating how to use the kwok
// matching engine. Each example is runnable via “go test -run Example”,
// showing both code and expected output.
package kwok_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/kwok"
)

// ExampleSolve_assignment demonstrates computing a maximum-weight bipartite
// matching for a small worker/task assignment.
func ExampleSolve_assignment() {
	// 1) Three workers (left), three tasks (right); adj[worker] lists the
	//    tasks it can perform and the value produced if assigned to them.
	adj := [][]kwok.Edge{
		{{To: 0, Weight: 3}, {To: 1, Weight: 2}},
		{{To: 0, Weight: 2}, {To: 2, Weight: 3}},
		{{To: 1, Weight: 3}, {To: 2, Weight: 2}},
	}

	// 2) Solve finds the assignment maximizing total value.
	m, err := kwok.Solve(3, 3, adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) LeftPairs[worker] is the assigned task, or kwok.Unmatched.
	fmt.Printf("total=%d worker0->task%d worker1->task%d worker2->task%d\n",
		m.TotalWeight, m.LeftPairs[0], m.LeftPairs[1], m.LeftPairs[2])
	// Output: total=9 worker0->task0 worker1->task2 worker2->task1
}

// ExampleSolve_moreRightsThanLefts demonstrates a partial matching when the
// right partition is larger than the left one.
func ExampleSolve_moreRightsThanLefts() {
	adj := [][]kwok.Edge{
		{{To: 0, Weight: 5}},
		{{To: 0, Weight: 5}},
	}

	m, err := kwok.Solve(2, 3, adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("total=%d\n", m.TotalWeight)
	// Output: total=5
}

// ExampleWithOnAugment demonstrates observing each augmenting phase via the
// WithOnAugment option, useful for progress logging on large instances.
func ExampleWithOnAugment() {
	adj := [][]kwok.Edge{
		{{To: 0, Weight: 1}},
		{{To: 1, Weight: 1}},
	}

	phases := 0
	_, err := kwok.Solve(2, 2, adj, kwok.WithOnAugment(func(phase, leftID int) {
		phases++
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Greedy seeding already matches both lefts, so no phase runs.
	fmt.Printf("phases=%d\n", phases)
	// Output: phases=0
}
