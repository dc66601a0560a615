// Package registry implements the game registry (component C7): an
// in-memory game_id -> state mapping with per-game exclusive guards and
// optional write-through persistence.
package registry

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hailam/quoridor/internal/game"
	"github.com/hailam/quoridor/internal/policy"
	"github.com/hailam/quoridor/internal/storage"
)

// entry is one game's guarded slot in the registry map.
type entry struct {
	mu    sync.Mutex
	state *game.State

	// difficulty is the opponent tier for this game, fixed at creation.
	difficulty policy.Difficulty

	// poisoned marks a game that failed an invariant check post-apply; once
	// set, the registry reports game_not_found for it (spec §7).
	poisoned bool
}

// Registry owns every live game's state.
type Registry struct {
	log   *zap.SugaredLogger
	store storage.Store // nil means memory-only

	mapMu sync.Mutex
	games map[string]*entry
}

// New constructs an empty registry. store may be nil to run memory-only
// (spec §4.7's graceful-degradation policy).
func New(store storage.Store, log *zap.SugaredLogger) *Registry {
	return &Registry{
		log:   log,
		store: store,
		games: make(map[string]*entry),
	}
}

// lookup acquires the map lock only long enough to fetch the per-game
// entry, per spec §5's "global map lock" contract.
func (r *Registry) lookup(gameID string) (*entry, bool) {
	r.mapMu.Lock()
	defer r.mapMu.Unlock()
	e, ok := r.games[gameID]
	return e, ok
}

// Create allocates a fresh game, persists it if storage is available, and
// returns its state.
func (r *Registry) Create(ctx context.Context, player1Name string, difficulty policy.Difficulty) *game.State {
	gameID := uuid.NewString()
	s := game.New(gameID, player1Name, "Computer")

	e := &entry{state: s, difficulty: difficulty}

	r.mapMu.Lock()
	r.games[gameID] = e
	r.mapMu.Unlock()

	r.persist(ctx, s)
	return s
}

// Get returns a snapshot of the named game's serializable state.
func (r *Registry) Get(gameID string) (game.StateDTO, bool) {
	e, ok := r.lookup(gameID)
	if !ok || e.poisoned {
		return game.StateDTO{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.ToSerializable(), true
}

// persist mirrors s to the store, if any, swallowing failures per the
// graceful-degradation policy (spec §4.7, §7): memory remains authoritative
// regardless of whether the write-through succeeds.
func (r *Registry) persist(ctx context.Context, s *game.State) {
	if r.store == nil {
		return
	}
	blob, err := json.Marshal(s.ToSerializable())
	if err != nil {
		r.log.Errorw("[registry] marshaling state for persistence", "game_id", s.GameID, "error", err)
		return
	}
	if err := r.store.Upsert(ctx, s.GameID, blob); err != nil {
		r.log.Warnw("[registry] persistence write failed, memory remains authoritative", "game_id", s.GameID, "error", err)
	}
}

// checkInvariants re-validates the invariants spec §3 requires to hold
// after every applied action. A violation here is a programmer error: the
// game is poisoned and further requests report game_not_found (spec §7).
func checkInvariants(s *game.State) bool {
	if s.Player1.Pos == s.Player2.Pos {
		return false
	}
	if !s.Player1.Pos.InBounds() || !s.Player2.Pos.InBounds() {
		return false
	}
	if s.Player1.WallsRemaining < 0 || s.Player2.WallsRemaining < 0 {
		return false
	}
	owned := len(s.Walls.Walls())
	if s.Player1.WallsRemaining+s.Player2.WallsRemaining+owned != 2*game.InitialWalls {
		return false
	}
	return true
}
