package rules

import (
	"fmt"

	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
	"github.com/hailam/quoridor/internal/pathfind"
)

// ValidateWallPlacement checks whether w may be placed by the player
// currently holding walls remaining wallsRemaining, against idx and both
// players' current positions and goal rows. On success it leaves w
// inserted into idx (the caller still owes the walls-remaining decrement);
// on failure idx is left exactly as it was found.
func ValidateWallPlacement(w board.Wall, wallsRemaining int, idx *board.WallIndex, p1, p2 game.Player) error {
	if wallsRemaining <= 0 {
		return newError(KindNoWallsRemaining, "player has no walls remaining")
	}

	if !w.AnchorInBounds() {
		return newError(KindInvalidWallPosition, fmt.Sprintf("wall anchor %s out of range", w))
	}
	if idx.WouldOverlap(w) {
		return newError(KindInvalidWallPosition, fmt.Sprintf("wall %s overlaps an existing wall", w))
	}
	if idx.WouldCross(w) {
		return newError(KindInvalidWallPosition, fmt.Sprintf("wall %s crosses an existing wall", w))
	}

	idx.Insert(w)
	if !pathfind.Reachable(p1.Pos, idx, pathfind.GoalRow(p1.GoalRow)) ||
		!pathfind.Reachable(p2.Pos, idx, pathfind.GoalRow(p2.GoalRow)) {
		idx.Remove(w)
		return newError(KindPathBlocked, fmt.Sprintf("wall %s would cut off a player's path to their goal", w))
	}

	return nil
}

// WouldBlockPath reports whether placing w would sever either player from
// their goal row, without regard to overlap/cross/range legality. Used by
// ListValidActions-style enumeration, which has already filtered those out.
func WouldBlockPath(w board.Wall, idx *board.WallIndex, p1, p2 game.Player) bool {
	idx.Insert(w)
	blocked := !pathfind.Reachable(p1.Pos, idx, pathfind.GoalRow(p1.GoalRow)) ||
		!pathfind.Reachable(p2.Pos, idx, pathfind.GoalRow(p2.GoalRow))
	idx.Remove(w)
	return blocked
}
