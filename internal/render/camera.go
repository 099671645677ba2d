package render

import (
	"math"

	"emoji-tactics/internal/grid"
)

// Camera maps board cells to screen cells. Each cell is two columns wide
// because emoji take two terminal columns, and rows are flipped so that
// board y=0 is the bottom row.
type Camera struct {
	OffsetX int // screen column of board x=0
	OffsetY int // screen row of board y=Size-1
	Size    int
}

// NewCamera centres a size×size board in a viewW×viewH area.
func NewCamera(size, viewW, viewH int) *Camera {
	return &Camera{
		OffsetX: max(0, (viewW-size*2)/2),
		OffsetY: max(0, (viewH-size)/2),
		Size:    size,
	}
}

// WorldToScreen converts a board cell to its left screen column and row.
func (c *Camera) WorldToScreen(v grid.Vec) (sx, sy int) {
	return c.OffsetX + v.X*2, c.OffsetY + c.Size - 1 - v.Y
}

// MotionToScreen converts a fractional board position to screen cells.
func (c *Camera) MotionToScreen(x, y float64) (sx, sy int) {
	return c.WorldToScreen(grid.V(int(math.Round(x)), int(math.Round(y))))
}

// ScreenToWorld converts a screen cell to the board cell under it. It
// reports false outside the board.
func (c *Camera) ScreenToWorld(sx, sy int) (grid.Vec, bool) {
	dx, dy := sx-c.OffsetX, sy-c.OffsetY
	if dx < 0 || dy < 0 {
		return grid.Vec{}, false
	}
	v := grid.V(dx/2, c.Size-1-dy)
	if v.X >= c.Size || v.Y < 0 {
		return grid.Vec{}, false
	}
	return v, true
}
