package system

import (
	"slices"
	"testing"

	"emoji-tactics/internal/component"
	"emoji-tactics/internal/factory"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"
)

func TestPossiblePositionsCentreAndCorner(t *testing.T) {
	w, b := openBoard(6)
	p := spawnPlayer(w, grid.V(3, 3), 2)
	if got := PossiblePositions(w, b, p); len(got) != 8 {
		t.Fatalf("centre: expected 8 positions, got %d: %v", len(got), got)
	}
	w.Add(p, component.At(grid.V(0, 0)))
	want := []grid.Vec{grid.V(1, 0), grid.V(0, 1), grid.V(1, 1)}
	got := PossiblePositions(w, b, p)
	slices.SortFunc(want, func(a, b grid.Vec) int {
		if a.Less(b) {
			return -1
		}
		return 1
	})
	if !slices.Equal(got, want) {
		t.Fatalf("corner: expected %v, got %v", want, got)
	}
}

func TestWallsAreNotTargetable(t *testing.T) {
	w, b := openBoard(6)
	p := spawnPlayer(w, grid.V(2, 2), 2)
	setTile(w, b, grid.V(3, 2), gamemap.TileWall)
	for _, v := range PossiblePositions(w, b, p) {
		if v == grid.V(3, 2) {
			t.Fatal("wall cell offered as a destination")
		}
	}
}

func TestUnitsAreTargetableButBlockWalking(t *testing.T) {
	w, b := openBoard(6)
	wolf := factory.NewNPC(w, component.KindWolf, grid.V(0, 0), 1)
	factory.NewNPC(w, component.KindHen, grid.V(0, 1), 1)

	got := PossiblePositions(w, b, wolf)
	if !slices.Contains(got, grid.V(0, 1)) {
		t.Error("occupied endpoint should be reachable")
	}
	for _, v := range []grid.Vec{grid.V(0, 2), grid.V(0, 3)} {
		if slices.Contains(got, v) {
			t.Errorf("%v should be blocked by the hen at (0,1)", v)
		}
	}
	if !slices.Contains(got, grid.V(3, 0)) {
		t.Error("open row should reach range 3")
	}
}

func TestCollectBlockersExcludesSelf(t *testing.T) {
	w, b := openBoard(4)
	setTile(w, b, grid.V(1, 1), gamemap.TileWall)
	p := spawnPlayer(w, grid.V(0, 0), 2)
	n := factory.NewNPC(w, component.KindHen, grid.V(3, 3), 1)

	bl := CollectBlockers(w, p)
	if bl.Blocked(grid.V(0, 0)) {
		t.Error("excluded entity should not appear")
	}
	if !bl.Blocked(grid.V(1, 1)) || bl.Targetable(grid.V(1, 1)) {
		t.Error("wall should be a non-targetable blocker")
	}
	if !bl.Targetable(grid.V(3, 3)) {
		t.Error("npc should be a targetable blocker")
	}
	if len(CollectBlockers(w, n)) != 2 {
		t.Errorf("expected wall and player, got %v", CollectBlockers(w, n))
	}
}

func TestTryMove(t *testing.T) {
	tests := []struct {
		name string
		ap   int
		dst  grid.Vec
		want MoveResult
		end  grid.Vec
	}{
		{"adjacent", 2, grid.V(3, 3), MoveOK, grid.V(3, 3)},
		{"too far", 2, grid.V(4, 4), MoveIllegal, grid.V(2, 2)},
		{"off board", 2, grid.V(2, -1), MoveIllegal, grid.V(2, 2)},
		{"no ap", 0, grid.V(3, 3), MoveNoAP, grid.V(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, b := openBoard(6)
			p := spawnPlayer(w, grid.V(2, 2), tt.ap)
			if got := TryMove(w, b, p, tt.dst); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if pos, _ := PositionOf(w, p); pos != tt.end {
				t.Fatalf("expected position %v, got %v", tt.end, pos)
			}
		})
	}
}

func TestTryMoveMissingUnit(t *testing.T) {
	w, b := openBoard(4)
	if got := TryMove(w, b, w.CreateEntity(), grid.V(1, 1)); got != MoveNoUnit {
		t.Fatalf("expected MoveNoUnit, got %v", got)
	}
}

func TestBushPausesForOneTurn(t *testing.T) {
	w, b := openBoard(6)
	setTile(w, b, grid.V(2, 3), gamemap.TileBush)
	p := spawnPlayer(w, grid.V(2, 2), 2)

	if TryMove(w, b, p, grid.V(2, 3)) != MoveOK {
		t.Fatal("move onto bush should be legal")
	}
	if !ApplyTileEffect(w, b, p) {
		t.Fatal("expected bush to pause")
	}
	u, _ := UnitOf(w, p)
	if u.State != component.StatePaused || u.AP != 0 {
		t.Fatalf("expected paused with 0 AP, got %+v", u)
	}

	u, _ = StartTurn(w, p, 2)
	if u.State != component.StateActive || u.AP != 0 {
		t.Fatalf("skip turn: expected active with 0 AP, got state=%v ap=%d", u.State, u.AP)
	}
	u, _ = StartTurn(w, p, 2)
	if u.AP != 2 {
		t.Fatalf("following turn: expected 2 AP, got %d", u.AP)
	}
}

func TestFloorHasNoEffect(t *testing.T) {
	w, b := openBoard(4)
	p := spawnPlayer(w, grid.V(1, 1), 2)
	if ApplyTileEffect(w, b, p) {
		t.Fatal("floor should not pause")
	}
	if apOf(w, p) != 2 {
		t.Fatalf("AP changed to %d", apOf(w, p))
	}
}

func TestEndMoveSaturates(t *testing.T) {
	w, _ := openBoard(4)
	p := spawnPlayer(w, grid.V(1, 1), 1)
	if left := EndMove(w, p); left != 0 {
		t.Fatalf("expected 0, got %d", left)
	}
	if left := EndMove(w, p); left != 0 {
		t.Fatalf("expected AP to stay at 0, got %d", left)
	}
}

func TestUnitAtPicksOldest(t *testing.T) {
	w, _ := openBoard(4)
	a := factory.NewNPC(w, component.KindHen, grid.V(1, 1), 1)
	b := factory.NewNPC(w, component.KindBear, grid.V(1, 1), 1)
	c := factory.NewNPC(w, component.KindFox, grid.V(1, 1), 1)
	if got, _ := UnitAt(w, grid.V(1, 1), c); got != a {
		t.Fatalf("expected %d, got %d", a, got)
	}
	if got, _ := UnitAt(w, grid.V(1, 1), a); got != b {
		t.Fatalf("expected %d, got %d", b, got)
	}
	if _, ok := UnitAt(w, grid.V(0, 0), 0); ok {
		t.Fatal("empty cell reported a unit")
	}
}
