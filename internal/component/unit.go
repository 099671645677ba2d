package component

import (
	"emoji-tactics/internal/behaviour"
	"emoji-tactics/internal/ecs"
)

const CUnit ecs.ComponentType = 2

// UnitKind identifies the player or one of the NPC archetypes.
type UnitKind uint8

const (
	KindPlayer UnitKind = iota
	KindHen
	KindFrog
	KindTurtle
	KindRam
	KindBear
	KindFox
	KindStork
	KindWolf
)

// UnitState is Active, or Paused for exactly one turn.
type UnitState uint8

const (
	StateActive UnitState = iota
	StatePaused
)

// Unit couples a kind with its action points and current behaviour.
type Unit struct {
	Kind      UnitKind
	AP        int
	Behaviour behaviour.Behaviour
	State     UnitState
}

func (Unit) Type() ecs.ComponentType { return CUnit }

// HandleTurnStart refills AP to base, or spends the turn un-pausing.
func (u *Unit) HandleTurnStart(base int) {
	switch u.State {
	case StatePaused:
		u.State = StateActive
		u.AP = 0
	default:
		u.AP = base
	}
}

// HandleMoveEnd consumes one AP, never going below zero.
func (u *Unit) HandleMoveEnd() {
	if u.AP > 0 {
		u.AP--
	}
}

// Pause skips the rest of this turn and the whole next one.
func (u *Unit) Pause() {
	u.State = StatePaused
	u.AP = 0
}

// AddAP grants n extra action points.
func (u *Unit) AddAP(n int) { u.AP += n }

// ClearAP drops the remaining action points.
func (u *Unit) ClearAP() { u.AP = 0 }
