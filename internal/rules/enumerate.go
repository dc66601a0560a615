package rules

import (
	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
)

// AllWallAnchors returns every in-range (row, col, orientation) candidate,
// in lexicographic (row, col, orientation) order, horizontal before
// vertical at a given anchor.
func AllWallAnchors() []board.Wall {
	out := make([]board.Wall, 0, (board.Size-1)*(board.Size-1)*2)
	for r := 0; r < board.Size-1; r++ {
		for c := 0; c < board.Size-1; c++ {
			out = append(out,
				board.Wall{Row: r, Col: c, Orientation: board.Horizontal},
				board.Wall{Row: r, Col: c, Orientation: board.Vertical},
			)
		}
	}
	return out
}

// LegalWallPlacements returns every wall the acting player could legally
// place right now: in range, no overlap/cross, and not severing either
// player's path. idx is left unmodified.
func LegalWallPlacements(wallsRemaining int, idx *board.WallIndex, p1, p2 game.Player) []board.Wall {
	if wallsRemaining <= 0 {
		return nil
	}

	out := make([]board.Wall, 0)
	for _, w := range AllWallAnchors() {
		if idx.WouldOverlap(w) || idx.WouldCross(w) {
			continue
		}
		if WouldBlockPath(w, idx, p1, p2) {
			continue
		}
		out = append(out, w)
	}
	return out
}
