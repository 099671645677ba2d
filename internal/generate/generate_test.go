package generate

import (
	"math/rand"
	"testing"

	"emoji-tactics/assets"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"
)

func makeConfig(seed int64) *Config {
	return &Config{
		BoardSize:  8,
		WallChance: 0.1,
		BushChance: 0.1,
		Level:      1,
		NPCBudget:  6,
		ItemRolls:  2,
		ItemChance: 1,
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

func TestGenerateSingleStairInLowerHalf(t *testing.T) {
	for seed := range int64(50) {
		cfg := makeConfig(seed)
		b := Generate(cfg)
		stairs := 0
		for _, v := range b.Cells() {
			if k, _ := b.KindAt(v); k == gamemap.TileStair {
				stairs++
			}
		}
		if stairs != 1 {
			t.Fatalf("seed %d: expected 1 stair, got %d", seed, stairs)
		}
		if b.Stair.Y >= cfg.BoardSize/2 {
			t.Fatalf("seed %d: stair %v not in the lower half", seed, b.Stair)
		}
	}
}

func TestGenerateRollsAllKinds(t *testing.T) {
	cfg := makeConfig(3)
	cfg.BoardSize = 20
	b := Generate(cfg)
	seen := map[gamemap.TileKind]int{}
	for _, v := range b.Cells() {
		k, _ := b.KindAt(v)
		seen[k]++
	}
	for _, k := range []gamemap.TileKind{gamemap.TileFloor, gamemap.TileWall, gamemap.TileBush} {
		if seen[k] == 0 {
			t.Errorf("expected some %v tiles on a 20×20 board", k)
		}
	}
}

func TestNPCSetBudgetRespected(t *testing.T) {
	for _, budget := range []int{0, 1, 2, 5, 11, 27} {
		cfg := makeConfig(int64(budget))
		set := NPCSet(budget, cfg)
		total := 0
		for _, k := range set {
			total += assets.UnitRank(k)
		}
		if total > budget {
			t.Errorf("budget %d: spent %d", budget, total)
		}
		// The cheapest NPC costs 1, so the budget is always spent exactly.
		if total != budget {
			t.Errorf("budget %d: left %d unspent", budget, budget-total)
		}
	}
}

func TestPopulateUsesFreeDistinctCells(t *testing.T) {
	for seed := range int64(20) {
		cfg := makeConfig(seed)
		cfg.NPCBudget = 12
		cfg.ItemRolls = 3
		b := Generate(cfg)
		spawn := b.Stair
		res := Populate(b, map[grid.Vec]bool{spawn: true}, cfg)

		used := map[grid.Vec]bool{}
		check := func(v grid.Vec) {
			if used[v] {
				t.Fatalf("seed %d: %v used twice", seed, v)
			}
			used[v] = true
			if v == spawn {
				t.Fatalf("seed %d: spawned on the player's cell", seed)
			}
			if k, _ := b.KindAt(v); k.Blocks() {
				t.Fatalf("seed %d: spawned on a wall at %v", seed, v)
			}
		}
		for _, n := range res.NPCs {
			check(n.Pos)
		}
		for _, it := range res.Items {
			check(it.Pos)
		}
		if len(res.Items) != 3 {
			t.Fatalf("seed %d: ItemChance=1 should spawn every roll; got %d", seed, len(res.Items))
		}
	}
}

func TestPopulateCrowdedBoard(t *testing.T) {
	cfg := makeConfig(1)
	b := gamemap.New(2)
	b.SetStair(grid.V(0, 0))
	cfg.NPCBudget = 50
	res := Populate(b, map[grid.Vec]bool{grid.V(1, 0): true}, cfg)
	if len(res.NPCs) != 2 {
		t.Fatalf("only two cells are free; got %d NPCs", len(res.NPCs))
	}
	if len(res.Items) != 0 {
		t.Fatalf("no room left for items; got %d", len(res.Items))
	}
}

func TestPopulateZeroChanceSpawnsNoItems(t *testing.T) {
	cfg := makeConfig(9)
	cfg.ItemChance = 0
	cfg.ItemRolls = 10
	res := Populate(Generate(cfg), nil, cfg)
	if len(res.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(res.Items))
	}
}
