// Package pathfind implements breadth-first reachability and shortest-path
// queries over the wall-constrained Quoridor grid graph.
package pathfind

import "github.com/hailam/quoridor/internal/board"

// GoalPredicate reports whether p satisfies the search's goal condition,
// typically "row equals the player's goal row".
type GoalPredicate func(p board.Pos) bool

// GoalRow returns a GoalPredicate matching any cell on the given row.
func GoalRow(row int) GoalPredicate {
	return func(p board.Pos) bool { return p.Row == row }
}

// Unreachable is the sentinel distance returned when no path exists.
const Unreachable = -1

// Reachable reports whether some cell satisfying goal is reachable from
// start under idx's current walls.
func Reachable(start board.Pos, idx *board.WallIndex, goal GoalPredicate) bool {
	return ShortestDistance(start, idx, goal) != Unreachable
}

// ShortestDistance returns the length of the shortest path from start to
// any cell satisfying goal, or Unreachable if none exists. Neighbor
// ordering (up, right, down, left) makes the search, and hence any tie it
// breaks, deterministic. The search performs no caching: it is cheap
// enough (at most 81 nodes) to run fresh on every call.
func ShortestDistance(start board.Pos, idx *board.WallIndex, goal GoalPredicate) int {
	if goal(start) {
		return 0
	}

	visited := make(map[board.Pos]bool, board.Size*board.Size)
	visited[start] = true

	queue := []board.Pos{start}
	dist := 0

	for len(queue) > 0 {
		dist++
		next := make([]board.Pos, 0, len(queue))
		for _, p := range queue {
			for _, n := range board.Neighbors(p, idx) {
				if visited[n] {
					continue
				}
				if goal(n) {
					return dist
				}
				visited[n] = true
				next = append(next, n)
			}
		}
		queue = next
	}

	return Unreachable
}
