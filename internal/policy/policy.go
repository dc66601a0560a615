// Package policy implements the opponent action-selection policy
// (component C6): three difficulty tiers built on a shared evaluation
// function, bounded-cost search for the hard tier.
package policy

import (
	"fmt"

	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
)

// Difficulty is one of the three opponent tiers.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// ParseDifficulty validates and normalizes a difficulty string, defaulting
// to Normal as spec §6 requires ("ai_difficulty ... default normal").
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case "":
		return Normal, nil
	case Easy, Normal, Hard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("policy: invalid difficulty %q", s)
	}
}

// ActionKind distinguishes the two action shapes a policy can return.
type ActionKind string

const (
	ActionMove ActionKind = "move"
	ActionWall ActionKind = "wall"
)

// Action is a chosen pawn move or wall placement.
type Action struct {
	Kind ActionKind
	Dest board.Pos  // valid when Kind == ActionMove
	Wall board.Wall // valid when Kind == ActionWall
}

// evalWeight is k in spec §4.6's evaluation formula.
const evalWeight = 0.1

// unreachableSentinel stands in for an infinite distance: larger than any
// real shortest path on an 81-cell board, but small enough that score
// arithmetic stays well inside int range.
const unreachableSentinel = 1000

// SelectAction produces an action for the player currently on turn in s,
// according to the given difficulty. randIntn is used only by the easy
// tier to pick uniformly among legal pawn moves; pass math/rand.Intn (or
// an equivalent concurrency-safe source) in production.
func SelectAction(s *game.State, acting game.Turn, diff Difficulty, randIntn func(n int) int) Action {
	me := *s.PlayerByTurn(acting)
	opp := *s.Opponent(acting)

	switch diff {
	case Easy:
		if a, ok := selectEasy(me, opp, s.Walls, randIntn); ok {
			return a
		}
	case Normal:
		if a, ok := selectNormal(me, opp, s.Walls); ok {
			return a
		}
	case Hard:
		if a, ok := selectHard(me, opp, s.Walls); ok {
			return a
		}
	}
	return fallback(me, opp, s.Walls)
}
