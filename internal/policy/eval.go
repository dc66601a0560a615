package policy

import (
	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
	"github.com/hailam/quoridor/internal/pathfind"
)

// evaluate scores a hypothetical state for the acting player p against
// opponent o, per spec §4.6:
//
//	score = dist(O) - dist(P) + k*(P.walls_remaining - O.walls_remaining)
//
// It returns (score, ok); ok is false when p itself is unreachable, in
// which case the caller must discard the candidate.
func evaluate(p, o game.Player, idx *board.WallIndex) (float64, bool) {
	pDist := distanceOrSentinel(p.Pos, p.GoalRow, idx)
	if pDist == unreachableSentinel {
		return 0, false
	}
	oDist := distanceOrSentinel(o.Pos, o.GoalRow, idx)

	score := float64(oDist-pDist) + evalWeight*float64(p.WallsRemaining-o.WallsRemaining)
	return score, true
}

func distanceOrSentinel(pos board.Pos, goalRow int, idx *board.WallIndex) int {
	d := pathfind.ShortestDistance(pos, idx, pathfind.GoalRow(goalRow))
	if d == pathfind.Unreachable {
		return unreachableSentinel
	}
	return d
}
