package factory

import (
	"emoji-tactics/assets"
	"emoji-tactics/internal/behaviour"
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"

	"github.com/gdamore/tcell/v2"
)

// NewTile creates the tile entity at v and registers it on the board.
// Walls get a non-targetable blocker.
func NewTile(w *ecs.World, b *gamemap.Board, v grid.Vec) ecs.EntityID {
	kind, _ := b.KindAt(v)
	id := w.CreateEntity()
	w.Add(id, component.At(v))
	w.Add(id, component.Tile{Kind: kind})
	if kind.Blocks() {
		w.Add(id, component.Blocker{Targetable: false})
	}
	b.Tiles[v] = id
	return id
}

// NewBoardTiles creates one tile entity per board cell.
func NewBoardTiles(w *ecs.World, b *gamemap.Board) {
	for _, v := range b.Cells() {
		NewTile(w, b, v)
	}
}

// NewPlayer creates the player unit at v with the given behaviour.
func NewPlayer(w *ecs.World, v grid.Vec, bh behaviour.Behaviour, ap int) ecs.EntityID {
	def := assets.Unit(component.KindPlayer)
	id := newUnit(w, v, component.Unit{Kind: component.KindPlayer, AP: ap, Behaviour: bh})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 10,
	})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewNPC creates an NPC of the given kind at v.
func NewNPC(w *ecs.World, kind component.UnitKind, v grid.Vec, ap int) ecs.EntityID {
	def := assets.Unit(kind)
	id := newUnit(w, v, component.Unit{Kind: kind, AP: ap, Behaviour: def.Behaviour})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     tcell.ColorRed,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 5,
	})
	w.Add(id, component.TagNPC{})
	return id
}

// NewItem creates an item pickup at v.
func NewItem(w *ecs.World, kind component.ItemKind, v grid.Vec) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(v))
	w.Add(id, component.Item{Kind: kind})
	w.Add(id, component.Renderable{
		Glyph:       assets.Item(kind).Glyph,
		FGColor:     tcell.ColorGreen,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 2,
	})
	return id
}

func newUnit(w *ecs.World, v grid.Vec, u component.Unit) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(v))
	w.Add(id, component.Motion{X: float64(v.X), Y: float64(v.Y)})
	w.Add(id, u)
	w.Add(id, component.Blocker{Targetable: true})
	return id
}
