package grid

import (
	"math"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestArithmetic(t *testing.T) {
	a, b := V(3, -2), V(1, 4)
	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := a.Sub(b); got != V(2, -6) {
		t.Errorf("Sub = %v, want (2,-6)", got)
	}
	if got := a.Mul(3); got != V(9, -6) {
		t.Errorf("Mul = %v, want (9,-6)", got)
	}
	if got := V(7, -7).Div(2); got != V(3, -3) {
		t.Errorf("Div = %v, want (3,-3)", got)
	}
}

func TestLenAndDist(t *testing.T) {
	if got := V(3, 4).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := V(1, 1).Dist(V(2, 2)); math.Abs(got-math.Sqrt2) > 1e-9 {
		t.Errorf("Dist = %v, want sqrt(2)", got)
	}
}

func TestVecIsMapKey(t *testing.T) {
	m := map[Vec]int{V(1, 2): 7}
	if m[V(1, 2)] != 7 {
		t.Fatal("equal coordinates should hash equally")
	}
}

func TestPointRoundTrip(t *testing.T) {
	p := gruid.Point{X: 5, Y: -1}
	if FromPoint(p).Point() != p {
		t.Fatal("Vec/Point conversion should be lossless")
	}
}

func TestLine(t *testing.T) {
	cases := []struct {
		name string
		a, b Vec
		want []Vec
	}{
		{"same cell", V(2, 2), V(2, 2), nil},
		{"adjacent", V(0, 0), V(1, 0), []Vec{V(0, 0), V(1, 0)}},
		{"vertical", V(0, 0), V(0, 3), []Vec{V(0, 0), V(0, 1), V(0, 2), V(0, 3)}},
		{"diagonal back", V(3, 3), V(1, 1), []Vec{V(3, 3), V(2, 2), V(1, 1)}},
		{"knight forward", V(0, 0), V(1, 2), []Vec{V(0, 0), V(0, 1), V(1, 2)}},
		{"knight backward", V(2, 2), V(1, 0), []Vec{V(2, 2), V(2, 1), V(1, 0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Line(tc.a, tc.b)
			if len(got) != len(tc.want) {
				t.Fatalf("Line(%v,%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Line(%v,%v) = %v, want %v", tc.a, tc.b, got, tc.want)
				}
			}
		})
	}
}

func TestBetweenExcludesEndpoints(t *testing.T) {
	if got := Between(V(0, 0), V(1, 1)); len(got) != 0 {
		t.Errorf("adjacent cells have nothing between them; got %v", got)
	}
	got := Between(V(0, 0), V(0, 3))
	if len(got) != 2 || got[0] != V(0, 1) || got[1] != V(0, 2) {
		t.Errorf("Between = %v, want [(0,1) (0,2)]", got)
	}
}
