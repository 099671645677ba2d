// Package behaviour describes how units may move: relative offset patterns
// plus the validator that decides whether the path to a target is open.
package behaviour

import "emoji-tactics/internal/grid"

// Ortho returns the four orthogonal directions scaled by every step 1..r.
func Ortho(r int) []grid.Vec { return ranged(grid.OrthoDirections[:], r) }

// Diagonal returns the four diagonal directions scaled by every step 1..r.
func Diagonal(r int) []grid.Vec { return ranged(grid.DiagonalDirections[:], r) }

// Omni returns all eight principal directions scaled by every step 1..r.
func Omni(r int) []grid.Vec {
	dirs := make([]grid.Vec, 0, 8)
	dirs = append(dirs, grid.OrthoDirections[:]...)
	dirs = append(dirs, grid.DiagonalDirections[:]...)
	return ranged(dirs, r)
}

// Knight returns the eight chess knight jumps.
func Knight() []grid.Vec {
	return []grid.Vec{
		{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: -1}, {X: 1, Y: -2},
		{X: -1, Y: -2}, {X: -2, Y: -1}, {X: -2, Y: 1}, {X: -1, Y: 2},
	}
}

// Combine concatenates patterns.
func Combine(patterns ...[]grid.Vec) []grid.Vec {
	var out []grid.Vec
	for _, p := range patterns {
		out = append(out, p...)
	}
	return out
}

func ranged(dirs []grid.Vec, r int) []grid.Vec {
	out := make([]grid.Vec, 0, len(dirs)*max(r, 0))
	for step := 1; step <= r; step++ {
		for _, d := range dirs {
			out = append(out, d.Mul(step))
		}
	}
	return out
}
