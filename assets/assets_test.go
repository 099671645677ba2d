package assets

import (
	"testing"

	"emoji-tactics/internal/behaviour"
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"
)

func TestEveryNPCKindDefined(t *testing.T) {
	for _, k := range NPCKinds {
		def := Unit(k)
		if def.Glyph == "" || def.Name == "" {
			t.Errorf("kind %d has no glyph/name", k)
		}
		if def.Rank <= 0 {
			t.Errorf("kind %d: NPC ranks must be positive, got %d", k, def.Rank)
		}
		if len(def.Behaviour.Pattern) == 0 {
			t.Errorf("kind %d has an empty pattern", k)
		}
	}
	if UnitRank(component.KindPlayer) != 0 {
		t.Error("the player costs nothing")
	}
}

func TestBehaviourTable(t *testing.T) {
	cases := []struct {
		kind      component.UnitKind
		size      int
		validator behaviour.Validator
	}{
		{component.KindPlayer, 8, behaviour.Walk},
		{component.KindHen, 4, behaviour.Walk},
		{component.KindFrog, 4, behaviour.Jump},
		{component.KindTurtle, 5, behaviour.Walk},
		{component.KindRam, 5, behaviour.Walk},
		{component.KindBear, 8, behaviour.Walk},
		{component.KindFox, 8, behaviour.Jump},
		{component.KindStork, 12, behaviour.Walk},
		{component.KindWolf, 12, behaviour.Walk},
	}
	for _, tc := range cases {
		b := UnitBehaviour(tc.kind)
		if len(b.Pattern) != tc.size || b.Validator != tc.validator {
			t.Errorf("kind %d: pattern=%d validator=%v; want %d %v",
				tc.kind, len(b.Pattern), b.Validator, tc.size, tc.validator)
		}
	}
}

func TestUnitReturnsIndependentCopies(t *testing.T) {
	a := UnitBehaviour(component.KindWolf)
	a.Pattern[0] = grid.V(42, 42)
	if UnitBehaviour(component.KindWolf).Pattern[0] == grid.V(42, 42) {
		t.Fatal("mutating a returned behaviour must not change the table")
	}
}

func TestRollItemKind(t *testing.T) {
	cases := []struct {
		roll float64
		want component.ItemKind
	}{
		{0.0, component.ItemArmor},
		{0.09, component.ItemArmor},
		{0.1, component.ItemStopMushroom},
		{0.44, component.ItemStopMushroom},
		{0.45, component.ItemSpeedMushroom},
		{0.99, component.ItemSpeedMushroom},
	}
	for _, tc := range cases {
		if got := RollItemKind(tc.roll); got != tc.want {
			t.Errorf("RollItemKind(%v) = %d, want %d", tc.roll, got, tc.want)
		}
	}
}

func TestThemeForCycles(t *testing.T) {
	if ThemeFor(1).Name != Themes[0].Name {
		t.Errorf("level 1 should use the first theme")
	}
	if ThemeFor(len(Themes)+1).Name != Themes[0].Name {
		t.Errorf("themes should wrap around")
	}
	if ThemeFor(0).Name != Themes[0].Name {
		t.Errorf("level 0 should clamp to the first theme")
	}
	for _, th := range Themes {
		if th.Glyph(gamemap.TileWall) == th.Glyph(gamemap.TileFloor) {
			t.Errorf("%s: wall and floor share a glyph", th.Name)
		}
	}
}
