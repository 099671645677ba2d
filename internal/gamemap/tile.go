package gamemap

import "codeberg.org/anaseto/gruid/rl"

// TileKind identifies the type of a board cell.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileBush
	TileStair
)

// Blocks reports whether the tile obstructs movement.
func (k TileKind) Blocks() bool { return k == TileWall }

// Pauses reports whether a unit finishing a move here loses its next turn.
func (k TileKind) Pauses() bool { return k == TileBush }

func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileBush:
		return "bush"
	case TileStair:
		return "stair"
	}
	return "unknown"
}

func (k TileKind) cell() rl.Cell { return rl.Cell(k) }

func kindOf(c rl.Cell) TileKind { return TileKind(c) }
