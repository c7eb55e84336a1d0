package aoc

import "testing"

func TestGridHash(t *testing.T) {
	a := MakeGrid[byte](3, 2)
	b := MakeGrid[byte](3, 2)
	if a.Hash() != b.Hash() {
		t.Fatal("equal grids hash differently")
	}
	b.Set(Pt{X: 2, Y: 1}, '#')
	if a.Hash() == b.Hash() {
		t.Error("different grids hash the same")
	}
	a.Set(Pt{X: 2, Y: 1}, '#')
	if a.Hash() != b.Hash() {
		t.Error("grids made equal hash differently")
	}
}

func TestGridAtOk(t *testing.T) {
	g := Grid[byte]{
		[]byte("ab"),
		[]byte("cd"),
	}
	tests := []struct {
		p    Pt
		want byte
		ok   bool
	}{
		{Pt{0, 0}, 'a', true},
		{Pt{1, 1}, 'd', true},
		{Pt{-1, 0}, 0, false},
		{Pt{2, 0}, 0, false},
		{Pt{0, 2}, 0, false},
	}
	for _, tt := range tests {
		got, ok := g.AtOk(tt.p)
		if got != tt.want || ok != tt.ok {
			t.Errorf("AtOk(%v) = %q, %v; want %q, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
	if got := g.Size(); got != (Pt{2, 2}) {
		t.Errorf("Size() = %v, want {2 2}", got)
	}
}

func TestForNeighbors(t *testing.T) {
	seen := map[Pt]bool{}
	Pt{5, 5}.ForNeighbors(func(p Pt) bool {
		seen[p] = true
		return true
	})
	if len(seen) != 8 || seen[Pt{5, 5}] || !seen[Pt{4, 4}] || !seen[Pt{6, 6}] {
		t.Errorf("ForNeighbors visited %v", seen)
	}

	n := 0
	Pt{0, 0}.ForNeighbors(func(Pt) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Errorf("ForNeighbors kept going after false: %d calls", n)
	}
}
