package component

import (
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/gamemap"
)

const CTile ecs.ComponentType = 5

// Tile is a board cell entity.
type Tile struct {
	Kind gamemap.TileKind
}

func (Tile) Type() ecs.ComponentType { return CTile }
