package component

import "emoji-tactics/internal/ecs"

const (
	CTagPlayer ecs.ComponentType = 8
	CTagNPC    ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled unit.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagNPC marks computer-controlled units.
type TagNPC struct{}

func (TagNPC) Type() ecs.ComponentType { return CTagNPC }
