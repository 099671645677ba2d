package system

import (
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/ecs"
)

// Interaction is what happened when a unit finished a move on an occupied
// cell.
type Interaction uint8

const (
	InteractNone      Interaction = iota
	InteractCapture               // player took the NPC's behaviour
	InteractArmorSave             // armor absorbed the attack; attacker destroyed
	InteractKill                  // NPC destroyed the player
	InteractTrample               // NPC destroyed another NPC
)

// InteractionResult describes a resolved interaction.
type InteractionResult struct {
	Kind      Interaction
	Other     ecs.EntityID
	OtherKind component.UnitKind
	MoverKind component.UnitKind
}

// ResolveInteraction settles what happens once mover stands on the same
// cell as another unit. The other unit is the oldest one sharing the cell.
func ResolveInteraction(w *ecs.World, pd *PlayerData, mover ecs.EntityID) InteractionResult {
	pos, ok := PositionOf(w, mover)
	if !ok {
		return InteractionResult{}
	}
	other, ok := UnitAt(w, pos, mover)
	if !ok {
		return InteractionResult{}
	}
	mu, _ := UnitOf(w, mover)
	ou, _ := UnitOf(w, other)
	res := InteractionResult{Other: other, OtherKind: ou.Kind, MoverKind: mu.Kind}

	moverIsPlayer := w.Has(mover, component.CTagPlayer)
	otherIsPlayer := w.Has(other, component.CTagPlayer)

	switch {
	case moverIsPlayer:
		pd.Behaviour = ou.Behaviour.Clone()
		mu.Behaviour = ou.Behaviour.Clone()
		mu.AddAP(1)
		w.Add(mover, mu)
		w.DestroyEntity(other)
		res.Kind = InteractCapture
	case otherIsPlayer:
		if pd.Armor > 0 {
			pd.Armor--
			w.DestroyEntity(mover)
			res.Kind = InteractArmorSave
		} else {
			w.DestroyEntity(other)
			res.Kind = InteractKill
		}
	default:
		w.DestroyEntity(other)
		res.Kind = InteractTrample
	}
	return res
}
