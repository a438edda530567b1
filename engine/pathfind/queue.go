package pathfind

import "container/heap"

// NodeQueue is the A* open list: a binary min-heap of nodes ordered by Score.Less.
// Each node records its own heap slot, so a re-prioritized node is located in O(1).
// The queue references nodes; the Grid keeps ownership.
type NodeQueue struct {
	h nodeHeap
}

// Len returns the number of queued nodes
func (q *NodeQueue) Len() int { return len(q.h) }

// Push inserts n. A node that is already queued is re-positioned instead.
func (q *NodeQueue) Push(n *Node) {
	if q.Contains(n) {
		q.Rebalance(n)
		return
	}
	heap.Push(&q.h, n)
}

// Pop removes and returns the minimum node, or nil when the queue is empty
func (q *NodeQueue) Pop() *Node {
	if len(q.h) == 0 {
		return nil
	}
	return heap.Pop(&q.h).(*Node)
}

// Peek returns the minimum node without removing it
func (q *NodeQueue) Peek() *Node {
	if len(q.h) == 0 {
		return nil
	}
	return q.h[0]
}

// Rebalance restores heap order after n's score was changed externally.
// Nodes that are not queued are ignored.
func (q *NodeQueue) Rebalance(n *Node) {
	if !q.Contains(n) {
		return
	}
	heap.Fix(&q.h, n.index)
}

// Contains reports whether n is currently queued
func (q *NodeQueue) Contains(n *Node) bool {
	return n != nil && n.index >= 0 && n.index < len(q.h) && q.h[n.index] == n
}

// Clear empties the queue, keeping its backing array
func (q *NodeQueue) Clear() {
	for i, n := range q.h {
		n.index = -1
		q.h[i] = nil
	}
	q.h = q.h[:0]
}

// --- heap.Interface ---

type nodeHeap []*Node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].score.Less(h[j].score) }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*Node)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*h = old[:last]
	return n
}
