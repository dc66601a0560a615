// Package game holds the Quoridor game state value types and their wire
// serialization (component C5 of the engine).
package game

import (
	"time"

	"github.com/hailam/quoridor/internal/board"
)

// Status is the game's lifecycle phase.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// Turn identifies which player acts next, or who won: 1 or 2.
type Turn int

const (
	Player1 Turn = 1
	Player2 Turn = 2
)

// Other returns the opposing turn.
func (t Turn) Other() Turn {
	if t == Player1 {
		return Player2
	}
	return Player1
}

// InitialWalls is how many walls each player starts with.
const InitialWalls = 10

// Player is one side's mutable state.
type Player struct {
	Name           string
	Pos            board.Pos
	WallsRemaining int
	GoalRow        int
}

// State is the authoritative in-memory representation of one game.
type State struct {
	GameID    string
	Status    Status
	Current   Turn
	TurnCount int
	Player1   Player
	Player2   Player
	Walls     *board.WallIndex
	Winner    Turn // 0 means no winner yet
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New constructs the initial state for a fresh game.
func New(gameID, player1Name, player2Name string) *State {
	now := time.Now()
	return &State{
		GameID:  gameID,
		Status:  StatusInProgress,
		Current: Player1,
		Player1: Player{
			Name:           player1Name,
			Pos:            board.Pos{Row: 8, Col: 4},
			WallsRemaining: InitialWalls,
			GoalRow:        0,
		},
		Player2: Player{
			Name:           player2Name,
			Pos:            board.Pos{Row: 0, Col: 4},
			WallsRemaining: InitialWalls,
			GoalRow:        8,
		},
		Walls:     board.NewWallIndex(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PlayerByTurn returns a pointer to the Player record for t.
func (s *State) PlayerByTurn(t Turn) *Player {
	if t == Player1 {
		return &s.Player1
	}
	return &s.Player2
}

// Opponent returns the player record opposing t.
func (s *State) Opponent(t Turn) *Player {
	return s.PlayerByTurn(t.Other())
}
