package component

import "emoji-tactics/internal/ecs"

const CMotion ecs.ComponentType = 7

// Motion is the on-screen position of an entity, trailing Position while a
// move animates.
type Motion struct {
	X, Y float64
}

func (Motion) Type() ecs.ComponentType { return CMotion }
