package rules

import (
	"testing"

	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
)

func newTestPlayers() (game.Player, game.Player) {
	p1 := game.Player{Name: "p1", Pos: board.Pos{Row: 8, Col: 4}, WallsRemaining: 10, GoalRow: 0}
	p2 := game.Player{Name: "p2", Pos: board.Pos{Row: 0, Col: 4}, WallsRemaining: 10, GoalRow: 8}
	return p1, p2
}

func TestValidateWallPlacementOK(t *testing.T) {
	idx := board.NewWallIndex()
	p1, p2 := newTestPlayers()
	w := board.Wall{Row: 3, Col: 3, Orientation: board.Horizontal}

	if err := ValidateWallPlacement(w, 10, idx, p1, p2); err != nil {
		t.Fatalf("expected valid placement, got %v", err)
	}
	if !idx.WouldCross(board.Wall{Row: 3, Col: 3, Orientation: board.Vertical}) {
		t.Errorf("expected wall to have been inserted into idx")
	}
}

func TestValidateWallPlacementNoWallsRemaining(t *testing.T) {
	idx := board.NewWallIndex()
	p1, p2 := newTestPlayers()
	w := board.Wall{Row: 3, Col: 3, Orientation: board.Horizontal}

	err := ValidateWallPlacement(w, 0, idx, p1, p2)
	if KindOf(err) != KindNoWallsRemaining {
		t.Fatalf("expected no_walls_remaining, got %v", err)
	}
}

// Scenario C: placing a wall that overlaps an existing one is rejected.
func TestValidateWallPlacementOverlap(t *testing.T) {
	idx := board.NewWallIndex()
	p1, p2 := newTestPlayers()
	idx.Insert(board.Wall{Row: 3, Col: 3, Orientation: board.Horizontal})

	err := ValidateWallPlacement(board.Wall{Row: 3, Col: 4, Orientation: board.Horizontal}, 10, idx, p1, p2)
	if KindOf(err) != KindInvalidWallPosition {
		t.Fatalf("expected invalid_wall_position for overlap, got %v", err)
	}
	if len(idx.Walls()) != 1 {
		t.Errorf("rejected placement must not mutate idx")
	}
}

// Scenario D: placing a wall that crosses an existing one is rejected.
func TestValidateWallPlacementCross(t *testing.T) {
	idx := board.NewWallIndex()
	p1, p2 := newTestPlayers()
	idx.Insert(board.Wall{Row: 3, Col: 3, Orientation: board.Horizontal})

	err := ValidateWallPlacement(board.Wall{Row: 3, Col: 3, Orientation: board.Vertical}, 10, idx, p1, p2)
	if KindOf(err) != KindInvalidWallPosition {
		t.Fatalf("expected invalid_wall_position for cross, got %v", err)
	}
}

// Scenario E: a wall that would fully block a player's path is rejected,
// leaving idx unmodified.
func TestValidateWallPlacementPathBlocked(t *testing.T) {
	idx := board.NewWallIndex()
	p1, p2 := newTestPlayers()

	// Wall player 1 into a corridor at (8,4)-(7,4) whose only exit is the
	// (7,4)-(6,4) edge, then plug that gap.
	idx.Insert(board.Wall{Row: 7, Col: 3, Orientation: board.Vertical})
	idx.Insert(board.Wall{Row: 7, Col: 4, Orientation: board.Vertical})

	err := ValidateWallPlacement(board.Wall{Row: 6, Col: 4, Orientation: board.Horizontal}, 10, idx, p1, p2)
	if KindOf(err) != KindPathBlocked {
		t.Fatalf("expected path_blocked, got %v", err)
	}
	if idx.WouldCross(board.Wall{Row: 6, Col: 4, Orientation: board.Vertical}) {
		t.Errorf("rejected path-blocking wall must not remain inserted")
	}
}

func TestValidateWallPlacementOutOfRange(t *testing.T) {
	idx := board.NewWallIndex()
	p1, p2 := newTestPlayers()

	err := ValidateWallPlacement(board.Wall{Row: 8, Col: 0, Orientation: board.Horizontal}, 10, idx, p1, p2)
	if KindOf(err) != KindInvalidWallPosition {
		t.Fatalf("expected invalid_wall_position for out-of-range anchor, got %v", err)
	}
}
