package component

import "emoji-tactics/internal/ecs"

// ItemKind enumerates the pickups.
type ItemKind uint8

const (
	ItemSpeedMushroom ItemKind = iota // +1 AP on use
	ItemStopMushroom                  // target loses all AP on use
	ItemArmor                         // passive: absorbs one attack
)

// Passive reports whether the item applies on pickup instead of going into
// the inventory.
func (k ItemKind) Passive() bool { return k == ItemArmor }

const CItem ecs.ComponentType = 6

// Item is a pickup lying on the board.
type Item struct {
	Kind ItemKind
}

func (Item) Type() ecs.ComponentType { return CItem }
