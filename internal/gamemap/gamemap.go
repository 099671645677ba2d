// Package gamemap holds the square board a level is played on.
package gamemap

import (
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/grid"

	"codeberg.org/anaseto/gruid/rl"
)

// Board is one level's tile grid. Every in-bounds cell has exactly one tile.
type Board struct {
	Size  int
	Stair grid.Vec
	// Tiles maps each cell to its tile entity once the board is spawned.
	Tiles map[grid.Vec]ecs.EntityID

	kinds rl.Grid
}

// New creates a size×size board of floor tiles.
func New(size int) *Board {
	b := &Board{
		Size:  size,
		Tiles: make(map[grid.Vec]ecs.EntityID, size*size),
		kinds: rl.NewGrid(size, size),
	}
	b.kinds.Fill(TileFloor.cell())
	return b
}

// InBounds reports whether v lies on the board.
func (b *Board) InBounds(v grid.Vec) bool {
	return b.kinds.Contains(v.Point())
}

// HasTile reports whether v is a board cell.
func (b *Board) HasTile(v grid.Vec) bool { return b.InBounds(v) }

// KindAt returns the tile kind at v; ok is false off the board.
func (b *Board) KindAt(v grid.Vec) (TileKind, bool) {
	if !b.InBounds(v) {
		return TileFloor, false
	}
	return kindOf(b.kinds.At(v.Point())), true
}

// Set replaces the tile kind at v. Out-of-bounds writes are ignored.
func (b *Board) Set(v grid.Vec, k TileKind) {
	if !b.InBounds(v) {
		return
	}
	b.kinds.Set(v.Point(), k.cell())
}

// SetStair makes v the board's single stair, turning any previous stair
// back into floor.
func (b *Board) SetStair(v grid.Vec) {
	if !b.InBounds(v) {
		return
	}
	if k, _ := b.KindAt(b.Stair); k == TileStair {
		b.Set(b.Stair, TileFloor)
	}
	b.Stair = v
	b.Set(v, TileStair)
}

// TileAt returns the tile entity at v.
func (b *Board) TileAt(v grid.Vec) (ecs.EntityID, bool) {
	id, ok := b.Tiles[v]
	return id, ok
}

// Cells returns every board coordinate in row-major order.
func (b *Board) Cells() []grid.Vec {
	out := make([]grid.Vec, 0, b.Size*b.Size)
	for y := range b.Size {
		for x := range b.Size {
			out = append(out, grid.V(x, y))
		}
	}
	return out
}

// Walls returns the coordinates of every wall tile.
func (b *Board) Walls() []grid.Vec {
	var out []grid.Vec
	for _, v := range b.Cells() {
		if k, _ := b.KindAt(v); k.Blocks() {
			out = append(out, v)
		}
	}
	return out
}
