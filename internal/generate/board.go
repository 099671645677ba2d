// Package generate builds boards and decides what spawns on them.
package generate

import (
	"math/rand"

	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"
)

// Config drives generation for one level.
type Config struct {
	BoardSize  int
	WallChance float64 // per-cell chance of a wall
	BushChance float64 // per-cell chance of a bush (rolled after walls)
	Level      int
	NPCBudget  int     // total rank to spend on NPCs
	ItemRolls  int     // how many item spawn attempts
	ItemChance float64 // success chance of each attempt
	Rand       *rand.Rand
}

// Generate rolls every cell and places the stair in the lower half.
func Generate(cfg *Config) *gamemap.Board {
	b := gamemap.New(cfg.BoardSize)
	for _, v := range b.Cells() {
		roll := cfg.Rand.Float64()
		switch {
		case roll < cfg.WallChance:
			b.Set(v, gamemap.TileWall)
		case roll < cfg.WallChance+cfg.BushChance:
			b.Set(v, gamemap.TileBush)
		}
	}
	half := max(1, cfg.BoardSize/2)
	b.SetStair(grid.V(cfg.Rand.Intn(cfg.BoardSize), cfg.Rand.Intn(half)))
	return b
}
