package game

import (
	"math"
	"math/rand"

	"emoji-tactics/internal/generate"
)

const (
	wallChance = 0.1
	bushChance = 0.1
)

// npcBudget is the total NPC rank spent on a level.
func npcBudget(level int) int {
	return int(math.Floor(math.Pow(float64(level), 1.5)))
}

// levelConfig builds a generate.Config for the given level.
func levelConfig(level int, cfg Config, rng *rand.Rand) *generate.Config {
	return &generate.Config{
		BoardSize:  cfg.BoardSize,
		WallChance: wallChance,
		BushChance: bushChance,
		Level:      level,
		NPCBudget:  npcBudget(level),
		ItemRolls:  cfg.ItemRolls,
		ItemChance: cfg.ItemChance,
		Rand:       rng,
	}
}
