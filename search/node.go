// Package search - search-tree node and priority queue internals.
//
// Nodes form a tree rooted at the initial state. Each node carries a
// back-pointer to its parent, so a terminal node alone is enough to
// reconstruct the full path; nodes dropped from the frontier are reclaimed
// by the garbage collector once no retained node chain references them.
package search

import (
	"github.com/katalvlaran/npuzzle/board"
)

// node wraps a state with its parent link, the move that produced it,
// accumulated path cost g, and heuristic estimate h (0 when unused).
type node struct {
	state  board.State
	parent *node // nil for the root
	move   board.Move
	g      int // moves from the initial state; each edge costs exactly 1
	h      int // heuristic estimate of remaining cost

	// prio orders the priority frontier: g+h for A*, h for Greedy.
	// Uninformed strategies leave it zero.
	prio int
}

// path walks parent links from nd back to the root, collecting a Step per
// node, then reverses so the root (move = MoveNone) comes first.
func (nd *node) path() []Step {
	steps := make([]Step, 0, nd.g+1)
	for cur := nd; cur != nil; cur = cur.parent {
		steps = append(steps, Step{State: cur.state, Move: cur.move})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// nodePQ is a min-heap of *node ordered by prio ascending. It supports the
// "lazy decrease-key" pattern: an improved route to a state pushes a fresh
// entry and the superseded one is dealt with when popped.
type nodePQ []*node

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller prio → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].prio < pq[j].prio }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
