package assets

import (
	"emoji-tactics/internal/behaviour"
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/grid"
)

// UnitDef is the static description of one unit kind.
type UnitDef struct {
	Kind      component.UnitKind
	Name      string
	Glyph     string
	Rank      int // spawn budget cost
	Behaviour behaviour.Behaviour
}

// forward is the direction NPCs advance in: toward the stair half.
var forward = grid.V(0, -1)

var unitDefs = map[component.UnitKind]UnitDef{
	component.KindPlayer: {
		Name: "Wanderer", Glyph: "🧒", Rank: 0,
		Behaviour: behaviour.Behaviour{Name: "wanderer", Pattern: behaviour.Omni(1), Validator: behaviour.Walk},
	},
	component.KindHen: {
		Name: "Hen", Glyph: "🐔", Rank: 1,
		Behaviour: behaviour.Behaviour{Name: "hen", Pattern: behaviour.Ortho(1), Validator: behaviour.Walk},
	},
	component.KindFrog: {
		Name: "Frog", Glyph: "🐸", Rank: 2,
		Behaviour: behaviour.Behaviour{Name: "frog", Pattern: behaviour.Diagonal(1), Validator: behaviour.Jump},
	},
	component.KindTurtle: {
		Name: "Turtle", Glyph: "🐢", Rank: 2,
		Behaviour: behaviour.Behaviour{
			Name:      "turtle",
			Pattern:   behaviour.Combine(behaviour.Ortho(1), []grid.Vec{forward.Mul(2)}),
			Validator: behaviour.Walk,
		},
	},
	component.KindRam: {
		Name: "Ram", Glyph: "🐏", Rank: 3,
		Behaviour: behaviour.Behaviour{
			Name: "ram",
			Pattern: []grid.Vec{
				forward, forward.Mul(2), forward.Mul(3),
				grid.V(1, 0), grid.V(-1, 0),
			},
			Validator: behaviour.Walk,
		},
	},
	component.KindBear: {
		Name: "Bear", Glyph: "🐻", Rank: 3,
		Behaviour: behaviour.Behaviour{Name: "bear", Pattern: behaviour.Omni(1), Validator: behaviour.Walk},
	},
	component.KindFox: {
		Name: "Fox", Glyph: "🦊", Rank: 4,
		Behaviour: behaviour.Behaviour{Name: "fox", Pattern: behaviour.Knight(), Validator: behaviour.Jump},
	},
	component.KindStork: {
		Name: "Stork", Glyph: "🦩", Rank: 4,
		Behaviour: behaviour.Behaviour{Name: "stork", Pattern: behaviour.Diagonal(3), Validator: behaviour.Walk},
	},
	component.KindWolf: {
		Name: "Wolf", Glyph: "🐺", Rank: 5,
		Behaviour: behaviour.Behaviour{Name: "wolf", Pattern: behaviour.Ortho(3), Validator: behaviour.Walk},
	},
}

// NPCKinds lists the spawnable archetypes in table order.
var NPCKinds = []component.UnitKind{
	component.KindHen,
	component.KindFrog,
	component.KindTurtle,
	component.KindRam,
	component.KindBear,
	component.KindFox,
	component.KindStork,
	component.KindWolf,
}

// Unit returns the definition of kind. Each call gets its own copy of the
// behaviour pattern.
func Unit(kind component.UnitKind) UnitDef {
	def := unitDefs[kind]
	def.Kind = kind
	def.Behaviour = def.Behaviour.Clone()
	return def
}

// UnitBehaviour returns a fresh copy of kind's base behaviour.
func UnitBehaviour(kind component.UnitKind) behaviour.Behaviour {
	return Unit(kind).Behaviour
}

// UnitRank returns kind's spawn cost.
func UnitRank(kind component.UnitKind) int { return unitDefs[kind].Rank }
