package generate

import (
	"emoji-tactics/assets"
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"
)

// NPCSpawn describes one NPC to create.
type NPCSpawn struct {
	Kind component.UnitKind
	Pos  grid.Vec
}

// ItemSpawn describes one item to create.
type ItemSpawn struct {
	Kind component.ItemKind
	Pos  grid.Vec
}

// PopulateResult is returned by Populate with entity spawn data.
type PopulateResult struct {
	NPCs  []NPCSpawn
	Items []ItemSpawn
}

// Populate places NPCs and items on free cells of b. Cells in occupied
// (the player's spawn) and walls are never used, and no two spawns share a
// cell.
func Populate(b *gamemap.Board, occupied map[grid.Vec]bool, cfg *Config) PopulateResult {
	var result PopulateResult

	var free []grid.Vec
	for _, v := range b.Cells() {
		k, _ := b.KindAt(v)
		if k.Blocks() || k == gamemap.TileStair || occupied[v] {
			continue
		}
		free = append(free, v)
	}
	cfg.Rand.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	for _, kind := range NPCSet(cfg.NPCBudget, cfg) {
		if len(free) == 0 {
			break
		}
		result.NPCs = append(result.NPCs, NPCSpawn{Kind: kind, Pos: free[0]})
		free = free[1:]
	}

	for range cfg.ItemRolls {
		if len(free) == 0 {
			break
		}
		if cfg.Rand.Float64() >= cfg.ItemChance {
			continue
		}
		kind := assets.RollItemKind(cfg.Rand.Float64())
		result.Items = append(result.Items, ItemSpawn{Kind: kind, Pos: free[0]})
		free = free[1:]
	}
	return result
}

// NPCSet draws random NPC kinds until their ranks add up to budget or no
// kind is cheap enough for what remains.
func NPCSet(budget int, cfg *Config) []component.UnitKind {
	var out []component.UnitKind
	for budget > 0 {
		affordable := affordableKinds(budget)
		if len(affordable) == 0 {
			break
		}
		kind := affordable[cfg.Rand.Intn(len(affordable))]
		out = append(out, kind)
		budget -= assets.UnitRank(kind)
	}
	return out
}

func affordableKinds(budget int) []component.UnitKind {
	var out []component.UnitKind
	for _, k := range assets.NPCKinds {
		if assets.UnitRank(k) <= budget {
			out = append(out, k)
		}
	}
	return out
}
