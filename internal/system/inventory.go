package system

import (
	"emoji-tactics/assets"
	"emoji-tactics/internal/behaviour"
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/ecs"
)

// MaxItems is the number of inventory slots.
const MaxItems = 3

// PlayerData is the player's state that outlives a single board.
type PlayerData struct {
	Behaviour behaviour.Behaviour
	Level     int
	Items     []component.ItemKind
	Armor     int
}

// NewPlayerData returns a level-1 player with the starting behaviour.
func NewPlayerData() *PlayerData {
	return &PlayerData{
		Behaviour: assets.UnitBehaviour(component.KindPlayer),
		Level:     1,
	}
}

// InventoryFull reports whether another active item can be carried.
func (pd *PlayerData) InventoryFull() bool { return len(pd.Items) >= MaxItems }

// Pickup collects every item on the player's cell. Armor is applied at
// once; other items go to the inventory while there is room and stay on
// the board otherwise. It returns the kinds collected.
func Pickup(w *ecs.World, pd *PlayerData, player ecs.EntityID) []component.ItemKind {
	pos, ok := PositionOf(w, player)
	if !ok {
		return nil
	}
	var got []component.ItemKind
	for _, id := range w.Query(component.CItem, component.CPosition) {
		if p, _ := PositionOf(w, id); p != pos {
			continue
		}
		it, _ := ecs.Get[component.Item](w, id, component.CItem)
		switch {
		case it.Kind.Passive():
			pd.Armor++
		case !pd.InventoryFull():
			pd.Items = append(pd.Items, it.Kind)
		default:
			continue
		}
		w.DestroyEntity(id)
		got = append(got, it.Kind)
	}
	return got
}

// UseItem consumes inventory slot idx on target. It reports false and
// changes nothing when idx is out of range.
func UseItem(w *ecs.World, pd *PlayerData, target ecs.EntityID, idx int) (component.ItemKind, bool) {
	if idx < 0 || idx >= len(pd.Items) {
		return 0, false
	}
	kind := pd.Items[idx]
	switch kind {
	case component.ItemSpeedMushroom:
		AddAP(w, target, 1)
	case component.ItemStopMushroom:
		ClearAP(w, target)
	}
	pd.Items = append(pd.Items[:idx], pd.Items[idx+1:]...)
	return kind, true
}
