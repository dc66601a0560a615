package policy

import (
	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
	"github.com/hailam/quoridor/internal/rules"
)

func selectEasy(me, opp game.Player, idx *board.WallIndex, randIntn func(n int) int) (Action, bool) {
	moves := rules.LegalPawnMoves(me.Pos, opp.Pos, idx)
	if len(moves) == 0 {
		return Action{}, false
	}
	return Action{Kind: ActionMove, Dest: moves[randIntn(len(moves))]}, true
}

// selectNormal never places walls (spec §4.6 "normal ... Never places
// walls").
func selectNormal(me, opp game.Player, idx *board.WallIndex) (Action, bool) {
	moves := rules.LegalPawnMoves(me.Pos, opp.Pos, idx)
	if len(moves) == 0 {
		return Action{}, false
	}

	best := moves[0]
	bestDist := distanceOrSentinel(best, me.GoalRow, idx)
	for _, m := range moves[1:] {
		d := distanceOrSentinel(m, me.GoalRow, idx)
		if d < bestDist {
			best, bestDist = m, d
		}
	}
	return Action{Kind: ActionMove, Dest: best}, true
}

// selectHard enumerates all legal pawn moves and wall placements within
// Chebyshev distance 2 of either pawn (spec §4.6's bounded-cost
// restriction), scores each speculatively with evaluate, and returns the
// maximizer. Ties break pawn moves before walls, fixed neighbor order for
// moves, and lexicographic (row, col, orientation) for walls.
func selectHard(me, opp game.Player, idx *board.WallIndex) (Action, bool) {
	type candidate struct {
		action Action
		score  float64
	}

	var best *candidate
	consider := func(a Action, score float64) {
		if best == nil || score > best.score {
			best = &candidate{action: a, score: score}
		}
	}

	for _, m := range rules.LegalPawnMoves(me.Pos, opp.Pos, idx) {
		hypo := me
		hypo.Pos = m
		if score, ok := evaluate(hypo, opp, idx); ok {
			consider(Action{Kind: ActionMove, Dest: m}, score)
		}
	}

	for _, w := range candidateWalls(me, opp, idx) {
		if idx.WouldOverlap(w) || idx.WouldCross(w) {
			continue
		}
		if rules.WouldBlockPath(w, idx, me, opp) {
			continue
		}

		idx.Insert(w)
		hypoMe := me
		hypoMe.WallsRemaining--
		score, ok := evaluate(hypoMe, opp, idx)
		idx.Remove(w)

		if ok {
			consider(Action{Kind: ActionWall, Wall: w}, score)
		}
	}

	if best == nil {
		return Action{}, false
	}
	return best.action, true
}

// candidateWalls returns every board wall anchored within Chebyshev
// distance 2 of either pawn, in lexicographic (row, col, orientation)
// order, so selectHard's tie-break only needs "first considered wins".
func candidateWalls(me, opp game.Player, idx *board.WallIndex) []board.Wall {
	if me.WallsRemaining <= 0 {
		return nil
	}

	out := make([]board.Wall, 0, 32)
	for _, w := range rules.AllWallAnchors() {
		anchor := board.Pos{Row: w.Row, Col: w.Col}
		if chebyshev(anchor, me.Pos) <= 2 || chebyshev(anchor, opp.Pos) <= 2 {
			out = append(out, w)
		}
	}
	return out
}

func chebyshev(a, b board.Pos) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// fallback returns a pawn move toward any legal neighbor. Spec §4.6 notes
// this path is structurally unreachable whenever pawn moves exist at all,
// since the straight-ahead cell is almost always legal.
func fallback(me, opp game.Player, idx *board.WallIndex) Action {
	moves := rules.LegalPawnMoves(me.Pos, opp.Pos, idx)
	if len(moves) == 0 {
		return Action{}
	}
	return Action{Kind: ActionMove, Dest: moves[0]}
}
