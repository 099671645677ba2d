package behaviour

import (
	"slices"

	"emoji-tactics/internal/grid"
)

// Tiles is the board view a behaviour needs: which cells exist.
type Tiles interface {
	HasTile(v grid.Vec) bool
}

// Behaviour is a unit's movement pattern and its path validator.
type Behaviour struct {
	Name      string
	Pattern   []grid.Vec
	Validator Validator
}

// Clone returns a copy that does not share the pattern slice.
func (b Behaviour) Clone() Behaviour {
	b.Pattern = slices.Clone(b.Pattern)
	return b
}

// PossiblePositions returns every legal destination from src, sorted
// row-major without duplicates.
func (b Behaviour) PossiblePositions(src grid.Vec, tiles Tiles, blockers Blockers) []grid.Vec {
	seen := make(map[grid.Vec]bool, len(b.Pattern))
	var out []grid.Vec
	for _, off := range b.Pattern {
		dst := src.Add(off)
		if seen[dst] || dst == src {
			continue
		}
		seen[dst] = true
		if !tiles.HasTile(dst) {
			continue
		}
		if !blockers.Targetable(dst) {
			continue
		}
		if !b.Validator.Valid(src, dst, blockers) {
			continue
		}
		out = append(out, dst)
	}
	slices.SortFunc(out, func(a, c grid.Vec) int {
		switch {
		case a.Less(c):
			return -1
		case c.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// CanReach reports whether dst is among the possible positions from src.
func (b Behaviour) CanReach(src, dst grid.Vec, tiles Tiles, blockers Blockers) bool {
	return slices.Contains(b.PossiblePositions(src, tiles, blockers), dst)
}
