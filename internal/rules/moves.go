package rules

import (
	"github.com/hailam/quoridor/internal/board"
)

// LegalPawnMoves returns the set of cells the pawn at me may legally move
// to, given the opponent at opp and the current wall layout. Ordering
// matches board.Neighbors for determinism (spec §8 property 8); jump
// destinations are appended after the orthogonal set.
func LegalPawnMoves(me, opp board.Pos, idx *board.WallIndex) []board.Pos {
	out := make([]board.Pos, 0, 4)
	adjacentToOpp := false

	for _, n := range board.Neighbors(me, idx) {
		if n == opp {
			adjacentToOpp = true
			continue
		}
		out = append(out, n)
	}

	if !adjacentToOpp {
		return out
	}

	// me and opp are orthogonally adjacent with no wall between them:
	// jump rules apply.
	dRow, dCol := opp.Row-me.Row, opp.Col-me.Col
	behind := board.Pos{Row: opp.Row + dRow, Col: opp.Col + dCol}

	if behind.InBounds() && !idx.IsBlocked(opp, behind) {
		out = append(out, behind)
		return out
	}

	// Straight jump unavailable: offer both perpendicular neighbors of
	// opp that aren't themselves wall-blocked from opp. behind can never
	// appear here since we only reach this branch when it's off-board or
	// blocked, so excluding me (the cell we jumped from) is sufficient.
	for _, n := range board.Neighbors(opp, idx) {
		if n == me {
			continue
		}
		out = append(out, n)
	}

	return out
}

// IsLegalPawnMove reports whether dest is in me's legal destination set.
func IsLegalPawnMove(me, opp board.Pos, idx *board.WallIndex, dest board.Pos) bool {
	for _, p := range LegalPawnMoves(me, opp, idx) {
		if p == dest {
			return true
		}
	}
	return false
}
