package policy

import (
	"testing"

	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
	"github.com/hailam/quoridor/internal/rules"
)

func TestParseDifficultyDefaultsToNormal(t *testing.T) {
	d, err := ParseDifficulty("")
	if err != nil || d != Normal {
		t.Fatalf("ParseDifficulty(\"\") = %v, %v; want Normal, nil", d, err)
	}
}

func TestParseDifficultyInvalid(t *testing.T) {
	if _, err := ParseDifficulty("expert"); err == nil {
		t.Errorf("expected an error for an unknown difficulty")
	}
}

func TestSelectEasyPicksFromLegalMoves(t *testing.T) {
	s := game.New("g1", "p1", "p2")
	s.Current = game.Player2
	action := SelectAction(s, game.Player2, Easy, func(n int) int { return 0 })
	if action.Kind != ActionMove {
		t.Fatalf("expected a move action, got %v", action)
	}
	legal := rules.LegalPawnMoves(s.Player2.Pos, s.Player1.Pos, s.Walls)
	if action.Dest != legal[0] {
		t.Errorf("expected the legal move at index 0 (%v), got %v", legal[0], action.Dest)
	}
}

func TestSelectNormalNeverPlacesWalls(t *testing.T) {
	s := game.New("g1", "p1", "p2")
	s.Current = game.Player2
	for i := 0; i < 5; i++ {
		action := SelectAction(s, game.Player2, Normal, nil)
		if action.Kind != ActionMove {
			t.Fatalf("normal tier must never place walls, got %v", action)
		}
	}
}

func TestSelectNormalMinimizesDistance(t *testing.T) {
	s := game.New("g1", "p1", "p2")
	s.Current = game.Player2
	action := SelectAction(s, game.Player2, Normal, nil)
	if action.Dest.Row != 1 {
		t.Errorf("expected player2 to advance toward row 8 from row 0, got dest %v", action.Dest)
	}
}

func TestSelectHardReturnsAction(t *testing.T) {
	s := game.New("g1", "p1", "p2")
	s.Current = game.Player2
	action := SelectAction(s, game.Player2, Hard, nil)
	if action.Kind != ActionMove && action.Kind != ActionWall {
		t.Fatalf("expected a move or wall action, got %v", action)
	}
}

func TestEvaluateUnreachableIsDiscarded(t *testing.T) {
	idx := board.NewWallIndex()
	for c := 0; c < board.Size-1; c++ {
		idx.Insert(board.Wall{Row: 0, Col: c, Orientation: board.Horizontal})
	}
	p := game.Player{Pos: board.Pos{Row: 8, Col: 4}, GoalRow: 0, WallsRemaining: 10}
	o := game.Player{Pos: board.Pos{Row: 0, Col: 4}, GoalRow: 8, WallsRemaining: 10}

	if _, ok := evaluate(p, o, idx); ok {
		t.Errorf("expected evaluate to report unreachable when the goal row is sealed off")
	}
}

func TestChebyshev(t *testing.T) {
	if got := chebyshev(board.Pos{Row: 2, Col: 2}, board.Pos{Row: 4, Col: 3}); got != 2 {
		t.Errorf("chebyshev((2,2),(4,3)) = %d, want 2", got)
	}
}
