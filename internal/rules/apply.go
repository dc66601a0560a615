package rules

import (
	"fmt"
	"time"

	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
)

// checkTurn enforces the turn-gating rules common to every action (spec
// §4.4 "Turn gating").
func checkTurn(s *game.State, acting game.Turn) error {
	if s.Status != game.StatusInProgress {
		return newError(KindGameFinished, "game has already finished")
	}
	if acting != s.Current {
		return newError(KindNotYourTurn, fmt.Sprintf("it is player %d's turn", s.Current))
	}
	return nil
}

// ApplyPawnMove validates and, on success, applies a pawn move by the
// acting player to dest. On failure s is left unchanged.
func ApplyPawnMove(s *game.State, acting game.Turn, dest board.Pos) error {
	if err := checkTurn(s, acting); err != nil {
		return err
	}

	me := s.PlayerByTurn(acting)
	opp := s.Opponent(acting)

	if !IsLegalPawnMove(me.Pos, opp.Pos, s.Walls, dest) {
		return newError(KindInvalidMove, fmt.Sprintf("%s is not a legal destination from %s", dest, me.Pos))
	}

	me.Pos = dest
	s.TurnCount++
	s.UpdatedAt = time.Now()

	if me.Pos.Row == me.GoalRow {
		s.Status = game.StatusFinished
		s.Winner = acting
		return nil
	}
	s.Current = acting.Other()
	return nil
}

// ApplyWall validates and, on success, applies a wall placement by the
// acting player. On failure s is left unchanged.
func ApplyWall(s *game.State, acting game.Turn, w board.Wall) error {
	if err := checkTurn(s, acting); err != nil {
		return err
	}

	me := s.PlayerByTurn(acting)
	opp := s.Opponent(acting)

	if err := ValidateWallPlacement(w, me.WallsRemaining, s.Walls, *me, *opp); err != nil {
		return err
	}

	me.WallsRemaining--
	s.TurnCount++
	s.UpdatedAt = time.Now()
	s.Current = acting.Other()
	return nil
}
