package component

import "emoji-tactics/internal/ecs"

const CBlocker ecs.ComponentType = 4

// Blocker marks an entity that obstructs walking. Targetable blockers
// (units) may still be chosen as a destination; walls may not.
type Blocker struct {
	Targetable bool
}

func (Blocker) Type() ecs.ComponentType { return CBlocker }
