package system

import (
	"math"
	"slices"

	"emoji-tactics/internal/component"
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"
)

// CrowdPenalty is added to the score of a cell another NPC already holds.
const CrowdPenalty = 50.0

// scoreScale turns float scores into integers before comparison so that
// equal distances compare equal.
const scoreScale = 1000

type candidate struct {
	pos   grid.Vec
	score int
}

// BestMove picks where NPC id should go to close in on target: the legal
// destination nearest target, with cells held by other NPCs penalised.
// It reports false when the NPC has nowhere to go.
func BestMove(w *ecs.World, b *gamemap.Board, id ecs.EntityID, target grid.Vec) (grid.Vec, bool) {
	positions := PossiblePositions(w, b, id)
	if len(positions) == 0 {
		return grid.Vec{}, false
	}

	crowded := make(map[grid.Vec]bool)
	for _, other := range NPCs(w) {
		if other == id {
			continue
		}
		if pos, ok := PositionOf(w, other); ok {
			crowded[pos] = true
		}
	}

	cands := make([]candidate, 0, len(positions))
	for _, p := range positions {
		score := p.Dist(target)
		if crowded[p] {
			score += CrowdPenalty
		}
		cands = append(cands, candidate{pos: p, score: int(math.Round(score * scoreScale))})
	}
	// Stable: equal scores keep the row-major order of positions.
	slices.SortStableFunc(cands, func(a, b candidate) int { return a.score - b.score })
	return cands[0].pos, true
}

// StepNPC starts NPC id's turn and, if it has action points, moves it one
// step along BestMove toward target. It reports whether the NPC moved.
func StepNPC(w *ecs.World, b *gamemap.Board, id ecs.EntityID, target grid.Vec, hasTarget bool, baseAP int) bool {
	u, ok := StartTurn(w, id, baseAP)
	if !ok || u.AP <= 0 || !hasTarget {
		return false
	}
	dst, ok := BestMove(w, b, id, target)
	if !ok {
		return false
	}
	w.Add(id, component.At(dst))
	return true
}
