package rules

import (
	"testing"

	"github.com/hailam/quoridor/internal/board"
)

func containsPos(ps []board.Pos, p board.Pos) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func TestLegalPawnMovesOpenBoard(t *testing.T) {
	idx := board.NewWallIndex()
	moves := LegalPawnMoves(board.Pos{Row: 4, Col: 4}, board.Pos{Row: 0, Col: 0}, idx)
	if len(moves) != 4 {
		t.Fatalf("expected 4 orthogonal moves on an open board, got %d: %v", len(moves), moves)
	}
}

// Scenario A: straight jump over an adjacent opponent with the landing
// square open.
func TestStraightJumpOverAdjacentOpponent(t *testing.T) {
	idx := board.NewWallIndex()
	me := board.Pos{Row: 4, Col: 4}
	opp := board.Pos{Row: 3, Col: 4}
	moves := LegalPawnMoves(me, opp, idx)

	if !containsPos(moves, board.Pos{Row: 2, Col: 4}) {
		t.Errorf("expected straight jump to (2,4), got %v", moves)
	}
	if containsPos(moves, opp) {
		t.Errorf("opponent's own square must never be a legal destination")
	}
}

// Scenario B: straight jump blocked by a wall behind the opponent falls
// back to the two diagonal destinations.
func TestDiagonalJumpWhenBehindIsWalled(t *testing.T) {
	idx := board.NewWallIndex()
	me := board.Pos{Row: 4, Col: 4}
	opp := board.Pos{Row: 3, Col: 4}
	// Wall immediately behind opp, sealing the (3,4)-(2,4) edge.
	idx.Insert(board.Wall{Row: 2, Col: 3, Orientation: board.Horizontal})
	idx.Insert(board.Wall{Row: 2, Col: 4, Orientation: board.Horizontal})

	moves := LegalPawnMoves(me, opp, idx)
	if containsPos(moves, board.Pos{Row: 2, Col: 4}) {
		t.Errorf("straight jump should be blocked, got %v", moves)
	}
	if !containsPos(moves, board.Pos{Row: 3, Col: 3}) || !containsPos(moves, board.Pos{Row: 3, Col: 5}) {
		t.Errorf("expected both diagonal landings, got %v", moves)
	}
}

func TestDiagonalJumpWhenBehindIsOffBoard(t *testing.T) {
	idx := board.NewWallIndex()
	me := board.Pos{Row: 1, Col: 4}
	opp := board.Pos{Row: 0, Col: 4}
	moves := LegalPawnMoves(me, opp, idx)

	if containsPos(moves, board.Pos{Row: -1, Col: 4}) {
		t.Errorf("off-board straight jump must never be offered")
	}
	if !containsPos(moves, board.Pos{Row: 0, Col: 3}) || !containsPos(moves, board.Pos{Row: 0, Col: 5}) {
		t.Errorf("expected both diagonal landings when behind is off-board, got %v", moves)
	}
}

func TestNotAdjacentNoJumpOffered(t *testing.T) {
	idx := board.NewWallIndex()
	me := board.Pos{Row: 4, Col: 4}
	opp := board.Pos{Row: 0, Col: 0}
	moves := LegalPawnMoves(me, opp, idx)
	if len(moves) != 4 {
		t.Errorf("expected 4 plain moves when opponent isn't adjacent, got %v", moves)
	}
}

func TestIsLegalPawnMove(t *testing.T) {
	idx := board.NewWallIndex()
	me := board.Pos{Row: 4, Col: 4}
	opp := board.Pos{Row: 0, Col: 0}
	if !IsLegalPawnMove(me, opp, idx, board.Pos{Row: 3, Col: 4}) {
		t.Errorf("expected (3,4) to be legal")
	}
	if IsLegalPawnMove(me, opp, idx, board.Pos{Row: 2, Col: 4}) {
		t.Errorf("expected (2,4) to be illegal from (4,4) with no jump available")
	}
}
