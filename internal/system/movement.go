package system

import (
	"emoji-tactics/internal/behaviour"
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveIllegal                   // target not among the legal destinations
	MoveNoUnit                    // mover is gone or has no position
	MoveNoAP                      // mover has no action points left
)

// CollectBlockers snapshots every blocker on the board except exclude.
func CollectBlockers(w *ecs.World, exclude ecs.EntityID) behaviour.Blockers {
	out := behaviour.Blockers{}
	for _, id := range w.Query(component.CBlocker, component.CPosition) {
		if id == exclude {
			continue
		}
		pos, _ := ecs.Get[component.Position](w, id, component.CPosition)
		bl, _ := ecs.Get[component.Blocker](w, id, component.CBlocker)
		out.Add(pos.Vec(), bl.Targetable)
	}
	return out
}

// PositionOf returns the board cell of id.
func PositionOf(w *ecs.World, id ecs.EntityID) (grid.Vec, bool) {
	pos, ok := ecs.Get[component.Position](w, id, component.CPosition)
	return pos.Vec(), ok
}

// UnitOf returns the unit component of id.
func UnitOf(w *ecs.World, id ecs.EntityID) (component.Unit, bool) {
	return ecs.Get[component.Unit](w, id, component.CUnit)
}

// PossiblePositions lists the legal destinations of unit id against every
// other blocker on the board.
func PossiblePositions(w *ecs.World, b *gamemap.Board, id ecs.EntityID) []grid.Vec {
	u, ok := UnitOf(w, id)
	if !ok {
		return nil
	}
	src, ok := PositionOf(w, id)
	if !ok {
		return nil
	}
	return u.Behaviour.PossiblePositions(src, b, CollectBlockers(w, id))
}

// TryMove moves unit id to dst when dst is one of its legal destinations.
// The caller runs interaction and move-end handling once the move settles.
func TryMove(w *ecs.World, b *gamemap.Board, id ecs.EntityID, dst grid.Vec) MoveResult {
	u, ok := UnitOf(w, id)
	if !ok || !w.Has(id, component.CPosition) {
		return MoveNoUnit
	}
	if u.AP <= 0 {
		return MoveNoAP
	}
	src, _ := PositionOf(w, id)
	if !u.Behaviour.CanReach(src, dst, b, CollectBlockers(w, id)) {
		return MoveIllegal
	}
	w.Add(id, component.At(dst))
	return MoveOK
}

// StartTurn applies the turn-start transition to unit id.
func StartTurn(w *ecs.World, id ecs.EntityID, baseAP int) (component.Unit, bool) {
	u, ok := UnitOf(w, id)
	if !ok {
		return u, false
	}
	u.HandleTurnStart(baseAP)
	w.Add(id, u)
	return u, true
}

// EndMove consumes one action point of unit id and returns what is left.
func EndMove(w *ecs.World, id ecs.EntityID) int {
	u, ok := UnitOf(w, id)
	if !ok {
		return 0
	}
	u.HandleMoveEnd()
	w.Add(id, u)
	return u.AP
}

// AddAP grants n action points to unit id.
func AddAP(w *ecs.World, id ecs.EntityID, n int) {
	if u, ok := UnitOf(w, id); ok {
		u.AddAP(n)
		w.Add(id, u)
	}
}

// ClearAP drops all action points of unit id.
func ClearAP(w *ecs.World, id ecs.EntityID) {
	if u, ok := UnitOf(w, id); ok {
		u.ClearAP()
		w.Add(id, u)
	}
}

// ApplyTileEffect pauses unit id when it stands on a bush and reports
// whether it did.
func ApplyTileEffect(w *ecs.World, b *gamemap.Board, id ecs.EntityID) bool {
	pos, ok := PositionOf(w, id)
	if !ok {
		return false
	}
	kind, ok := b.KindAt(pos)
	if !ok || !kind.Pauses() {
		return false
	}
	u, ok := UnitOf(w, id)
	if !ok {
		return false
	}
	u.Pause()
	w.Add(id, u)
	return true
}

// UnitAt returns the oldest living unit at v other than exclude.
func UnitAt(w *ecs.World, v grid.Vec, exclude ecs.EntityID) (ecs.EntityID, bool) {
	for _, id := range w.Query(component.CUnit, component.CPosition) {
		if id == exclude {
			continue
		}
		if pos, _ := PositionOf(w, id); pos == v {
			return id, true
		}
	}
	return ecs.NilEntity, false
}

// NPCs returns every living NPC in spawn order.
func NPCs(w *ecs.World) []ecs.EntityID {
	return w.Query(component.CTagNPC, component.CUnit)
}

// Player returns the player entity, if it is alive.
func Player(w *ecs.World) (ecs.EntityID, bool) {
	return w.First(component.CTagPlayer, component.CUnit)
}
