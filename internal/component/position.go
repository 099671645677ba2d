package component

import (
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/grid"
)

const CPosition ecs.ComponentType = 1

// Position is the authoritative board cell of an entity.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Vec returns the position as a grid coordinate.
func (p Position) Vec() grid.Vec { return grid.V(p.X, p.Y) }

// At builds a Position from a grid coordinate.
func At(v grid.Vec) Position { return Position{X: v.X, Y: v.Y} }
