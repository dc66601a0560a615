package registry

import (
	"context"
	"math/rand"

	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
	"github.com/hailam/quoridor/internal/policy"
	"github.com/hailam/quoridor/internal/rules"
)

// errNotFound mirrors rules.Error's shape so callers can switch on Kind
// uniformly for both registry-level and rule-engine failures.
var errNotFound = &rules.Error{Kind: rules.KindGameNotFound, Message: "game not found"}

// withGame acquires gameID's guard and runs fn against its state,
// persisting on success and poisoning the entry if fn leaves the state
// inconsistent. It is the single choke point every mutating registry
// operation goes through, satisfying spec §5's "serial order consistent
// with some interleaving of accepted actions" contract.
func (r *Registry) withGame(ctx context.Context, gameID string, fn func(*entry) error) error {
	e, ok := r.lookup(gameID)
	if !ok {
		return errNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poisoned {
		return errNotFound
	}

	if err := fn(e); err != nil {
		return err
	}

	if !checkInvariants(e.state) {
		e.poisoned = true
		r.log.Errorw("[registry] invariant violation after apply, poisoning game", "game_id", gameID)
		return errNotFound
	}

	r.persist(ctx, e.state)
	return nil
}

// ApplyPawnMove validates and applies a pawn move by the current-turn
// player.
func (r *Registry) ApplyPawnMove(ctx context.Context, gameID string, acting game.Turn, dest board.Pos) (game.StateDTO, error) {
	var out game.StateDTO
	err := r.withGame(ctx, gameID, func(e *entry) error {
		if err := rules.ApplyPawnMove(e.state, acting, dest); err != nil {
			return err
		}
		out = e.state.ToSerializable()
		return nil
	})
	return out, err
}

// ApplyWall validates and applies a wall placement by the current-turn
// player.
func (r *Registry) ApplyWall(ctx context.Context, gameID string, acting game.Turn, w board.Wall) (game.StateDTO, error) {
	var out game.StateDTO
	err := r.withGame(ctx, gameID, func(e *entry) error {
		if err := rules.ApplyWall(e.state, acting, w); err != nil {
			return err
		}
		out = e.state.ToSerializable()
		return nil
	})
	return out, err
}

// positionDTO renders p in the wire schema's lowercase {row,col} shape
// (game.PositionDTO), matching every other position on the wire.
func positionDTO(p board.Pos) game.PositionDTO {
	return game.PositionDTO{Row: p.Row, Col: p.Col}
}

// wallDTO renders w in the wire schema's {row,col,orientation} shape
// (game.WallDTO), with orientation spelled out as "horizontal"/"vertical"
// rather than its bare internal int code.
func wallDTO(w board.Wall) game.WallDTO {
	return game.WallDTO{Row: w.Row, Col: w.Col, Orientation: w.Orientation.String()}
}

// AppliedAction describes what the opponent policy chose, for the
// ai-move response's "action" field.
type AppliedAction struct {
	Kind string            `json:"kind"`
	Move *game.PositionDTO `json:"move,omitempty"`
	Wall *game.WallDTO     `json:"wall,omitempty"`
}

// ApplyOpponentTurn asks the opponent policy for an action and routes it
// through the same apply path a human move would take, so no rule check
// is bypassed (spec §4.7).
func (r *Registry) ApplyOpponentTurn(ctx context.Context, gameID string) (AppliedAction, game.StateDTO, error) {
	var action AppliedAction
	var out game.StateDTO

	err := r.withGame(ctx, gameID, func(e *entry) error {
		s := e.state
		if s.Status != game.StatusInProgress {
			return &rules.Error{Kind: rules.KindGameFinished, Message: "game has already finished"}
		}

		chosen := policy.SelectAction(s, s.Current, e.difficulty, rand.Intn)

		acting := s.Current
		var err error
		switch chosen.Kind {
		case policy.ActionWall:
			err = rules.ApplyWall(s, acting, chosen.Wall)
			if err == nil {
				w := wallDTO(chosen.Wall)
				action = AppliedAction{Kind: "wall", Wall: &w}
			}
		default:
			err = rules.ApplyPawnMove(s, acting, chosen.Dest)
			if err == nil {
				d := positionDTO(chosen.Dest)
				action = AppliedAction{Kind: "move", Move: &d}
			}
		}
		if err != nil {
			return err
		}
		out = s.ToSerializable()
		return nil
	})

	return action, out, err
}

// ValidActions is the response shape for list_valid_actions.
type ValidActions struct {
	PawnMoves      []game.PositionDTO `json:"valid_pawn_moves"`
	WallPlacements []game.WallDTO     `json:"valid_wall_placements"`
	WallsRemaining int                `json:"walls_remaining"`
}

// ListValidActions enumerates every action the current-turn player could
// legally take right now.
func (r *Registry) ListValidActions(gameID string) (ValidActions, error) {
	e, ok := r.lookup(gameID)
	if !ok || e.poisoned {
		return ValidActions{}, errNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.state
	me := s.PlayerByTurn(s.Current)
	opp := s.Opponent(s.Current)

	moves := rules.LegalPawnMoves(me.Pos, opp.Pos, s.Walls)
	moveDTOs := make([]game.PositionDTO, 0, len(moves))
	for _, m := range moves {
		moveDTOs = append(moveDTOs, positionDTO(m))
	}

	walls := rules.LegalWallPlacements(me.WallsRemaining, s.Walls, *me, *opp)
	wallDTOs := make([]game.WallDTO, 0, len(walls))
	for _, w := range walls {
		wallDTOs = append(wallDTOs, wallDTO(w))
	}

	return ValidActions{
		PawnMoves:      moveDTOs,
		WallPlacements: wallDTOs,
		WallsRemaining: me.WallsRemaining,
	}, nil
}

// Destroy removes gameID from the registry, per spec §3's "terminates on
// ... explicit destruction".
func (r *Registry) Destroy(gameID string) bool {
	r.mapMu.Lock()
	defer r.mapMu.Unlock()
	if _, ok := r.games[gameID]; !ok {
		return false
	}
	delete(r.games, gameID)
	return true
}
