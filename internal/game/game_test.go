package game

import (
	"testing"

	"github.com/hailam/quoridor/internal/board"
)

func TestNewInitialLayout(t *testing.T) {
	s := New("g1", "alice", "bob")

	if s.Player1.Pos != (board.Pos{Row: 8, Col: 4}) {
		t.Errorf("unexpected player1 start position: %v", s.Player1.Pos)
	}
	if s.Player2.Pos != (board.Pos{Row: 0, Col: 4}) {
		t.Errorf("unexpected player2 start position: %v", s.Player2.Pos)
	}
	if s.Player1.GoalRow != 0 || s.Player2.GoalRow != board.Size-1 {
		t.Errorf("unexpected goal rows: p1=%d p2=%d", s.Player1.GoalRow, s.Player2.GoalRow)
	}
	if s.Player1.WallsRemaining != InitialWalls || s.Player2.WallsRemaining != InitialWalls {
		t.Errorf("expected both players to start with %d walls", InitialWalls)
	}
	if s.Current != Player1 {
		t.Errorf("expected player1 to move first")
	}
	if s.Status != StatusInProgress {
		t.Errorf("expected a fresh game to be in progress")
	}
}

func TestTurnOther(t *testing.T) {
	if Player1.Other() != Player2 {
		t.Errorf("Player1.Other() should be Player2")
	}
	if Player2.Other() != Player1 {
		t.Errorf("Player2.Other() should be Player1")
	}
}

func TestPlayerByTurnAndOpponent(t *testing.T) {
	s := New("g1", "alice", "bob")
	if s.PlayerByTurn(Player1).Name != "alice" {
		t.Errorf("expected PlayerByTurn(Player1) to be alice")
	}
	if s.Opponent(Player1).Name != "bob" {
		t.Errorf("expected Opponent(Player1) to be bob")
	}
}
