package game

import (
	"fmt"

	"github.com/hailam/quoridor/internal/board"
)

func playerFromDTO(d PlayerDTO) Player {
	return Player{
		Name:           d.Name,
		Pos:            board.Pos{Row: d.Position.Row, Col: d.Position.Col},
		WallsRemaining: d.WallsRemaining,
		GoalRow:        d.GoalRow,
	}
}

// FromSerializable reconstructs a State from its wire-schema DTO. It is the
// inverse of ToSerializable: for any reachable state s,
// FromSerializable(s.ToSerializable()) reproduces s field-for-field.
func FromSerializable(d StateDTO) (*State, error) {
	walls := board.NewWallIndex()
	for _, w := range d.Walls {
		o, err := board.ParseOrientation(w.Orientation)
		if err != nil {
			return nil, fmt.Errorf("game: decoding wall %+v: %w", w, err)
		}
		walls.Insert(board.Wall{Row: w.Row, Col: w.Col, Orientation: o})
	}

	var winner Turn
	if d.Winner != nil {
		winner = Turn(*d.Winner)
	}

	return &State{
		GameID:    d.GameID,
		Status:    Status(d.Status),
		Current:   Turn(d.Current),
		TurnCount: d.TurnCount,
		Player1:   playerFromDTO(d.Players.Player1),
		Player2:   playerFromDTO(d.Players.Player2),
		Walls:     walls,
		Winner:    winner,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
