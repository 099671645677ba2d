package game

import "fmt"

// Config holds the tunables of one game.
type Config struct {
	PlayerAP   int     // player action points per turn
	NPCAP      int     // NPC action points per turn
	BoardSize  int     // board is BoardSize × BoardSize
	ItemChance float64 // chance of each item roll succeeding
	ItemRolls  int     // item rolls per level
	AnimSpeed  float64 // lerp factor per second for unit motion
	FadeRate   float64 // fade progress per second
	Seed       int64   // 0 picks a time-based seed
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		PlayerAP:   2,
		NPCAP:      1,
		BoardSize:  8,
		ItemChance: 0.5,
		ItemRolls:  2,
		AnimSpeed:  20,
		FadeRate:   5,
	}
}

// Validate rejects rules no board can be generated for.
func (c Config) Validate() error {
	if c.BoardSize < 2 {
		return fmt.Errorf("board size %d: must be at least 2", c.BoardSize)
	}
	if c.PlayerAP < 1 || c.NPCAP < 1 {
		return fmt.Errorf("action points %d/%d: must be at least 1", c.PlayerAP, c.NPCAP)
	}
	return nil
}
