package assets

import "emoji-tactics/internal/component"

// ItemDef is the static description of one item kind.
type ItemDef struct {
	Kind  component.ItemKind
	Name  string
	Glyph string
}

var itemDefs = map[component.ItemKind]ItemDef{
	component.ItemSpeedMushroom: {Name: "Speed Mushroom", Glyph: "🍄"},
	component.ItemStopMushroom:  {Name: "Stop Mushroom", Glyph: "🟤"},
	component.ItemArmor:         {Name: "Armor", Glyph: "🛡️"},
}

// Item returns the definition of kind.
func Item(kind component.ItemKind) ItemDef {
	def := itemDefs[kind]
	def.Kind = kind
	return def
}

// RollItemKind maps a uniform roll in [0,1) to an item kind:
// 10% armor, 35% stop mushroom, 55% speed mushroom.
func RollItemKind(roll float64) component.ItemKind {
	switch {
	case roll < 0.1:
		return component.ItemArmor
	case roll < 0.45:
		return component.ItemStopMushroom
	default:
		return component.ItemSpeedMushroom
	}
}
