package behaviour

import "emoji-tactics/internal/grid"

// Blockers maps every occupied cell to whether it may be targeted.
// Walls are blockers that cannot be targeted; units can.
type Blockers map[grid.Vec]bool

// Add records a blocker at v. A cell holding any non-targetable blocker
// stays non-targetable.
func (b Blockers) Add(v grid.Vec, targetable bool) {
	if prev, ok := b[v]; ok {
		targetable = prev && targetable
	}
	b[v] = targetable
}

// Blocked reports whether v holds a blocker.
func (b Blockers) Blocked(v grid.Vec) bool {
	_, ok := b[v]
	return ok
}

// Targetable reports whether v is free or holds only targetable blockers.
func (b Blockers) Targetable(v grid.Vec) bool {
	t, ok := b[v]
	return !ok || t
}

// Validator decides whether the path from source to target is open.
type Validator uint8

const (
	Walk Validator = iota // blocked by anything strictly between source and target
	Jump                  // never blocked
)

func (v Validator) String() string {
	switch v {
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	}
	return "unknown"
}

// Valid reports whether a move from src to dst passes this validator.
// Occupancy of dst itself is not considered here.
func (v Validator) Valid(src, dst grid.Vec, blockers Blockers) bool {
	switch v {
	case Jump:
		return true
	case Walk:
		for _, c := range grid.Between(src, dst) {
			if blockers.Blocked(c) {
				return false
			}
		}
		return true
	}
	return false
}
