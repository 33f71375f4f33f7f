// pkg/grid/pathfinding.go
package grid

import (
	"container/heap"
)

// PassableFunc reports whether a position can be entered.
type PassableFunc func(Position) bool

// AStar finds the shortest orthogonal path from start to goal.
// The goal itself does not need to be passable. Returns nil when no path exists
// or when the search exceeds limit expanded nodes (limit <= 0 means unbounded).
func AStar(start, goal Position, passable PassableFunc, limit int) []Position {
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Pos: start, Cost: 0, Parent: nil})
	costSoFar := make(map[Position]int)
	costSoFar[start] = 0
	expanded := 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Pos == goal {
			return reconstructPath(current)
		}
		expanded++
		if limit > 0 && expanded > limit {
			return nil
		}
		for _, neighbor := range current.Pos.Neighbors() {
			if neighbor != goal && !passable(neighbor) {
				continue
			}
			newCost := costSoFar[current.Pos] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				priority := newCost + neighbor.Manhattan(goal)
				heap.Push(pq, &Node{Pos: neighbor, Cost: priority, Parent: current})
			}
		}
	}
	return nil
}

// NextStep returns the first move of the A* path from start to goal.
// Falls back to a greedy step when no path is found.
func NextStep(start, goal Position, passable PassableFunc, limit int) Position {
	if start == goal {
		return start
	}
	if path := AStar(start, goal, passable, limit); len(path) > 1 {
		return path[1]
	}
	return start.Step(start.StepToward(goal))
}

// PriorityQueue orders A* nodes by estimated cost.
type PriorityQueue []*Node

type Node struct {
	Pos    Position
	Cost   int
	Parent *Node
}

func (pq PriorityQueue) Len() int           { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool { return pq[i].Cost < pq[j].Cost }
func (pq PriorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Position {
	path := []Position{}
	for node != nil {
		path = append([]Position{node.Pos}, path...)
		node = node.Parent
	}
	return path
}
