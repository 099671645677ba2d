package system

import (
	"emoji-tactics/assets"
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/factory"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"
)

// openBoard returns a world and an all-floor board with tile entities.
func openBoard(size int) (*ecs.World, *gamemap.Board) {
	w := ecs.NewWorld()
	b := gamemap.New(size)
	factory.NewBoardTiles(w, b)
	return w, b
}

// setTile changes the kind at v and rebuilds its tile entity.
func setTile(w *ecs.World, b *gamemap.Board, v grid.Vec, k gamemap.TileKind) {
	if id, ok := b.TileAt(v); ok {
		w.DestroyEntity(id)
	}
	b.Set(v, k)
	factory.NewTile(w, b, v)
}

func spawnPlayer(w *ecs.World, v grid.Vec, ap int) ecs.EntityID {
	return factory.NewPlayer(w, v, assets.UnitBehaviour(component.KindPlayer), ap)
}

func apOf(w *ecs.World, id ecs.EntityID) int {
	u, _ := UnitOf(w, id)
	return u.AP
}
