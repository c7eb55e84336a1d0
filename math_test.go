package aoc

import "testing"

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{4}, 4},
		{[]int{2, 3}, 6},
		{[]int{4, 6}, 12},
		{[]int{2, 3, 4, 5}, 60},
	}
	for _, tt := range tests {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSolveQuad(t *testing.T) {
	// x^2 - 30x + 200 = (x-10)(x-20)
	hi, lo := SolveQuad(1, -30, 200)
	if hi != 20 || lo != 10 {
		t.Errorf("SolveQuad(1, -30, 200) = %v, %v; want 20, 10", hi, lo)
	}
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		in       []int
		fwd, bwd int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{7}, 7, 7},
	}
	for _, tt := range tests {
		if got := Extrapolate(tt.in, true); got != tt.fwd {
			t.Errorf("Extrapolate(%v, true) = %d, want %d", tt.in, got, tt.fwd)
		}
		if got := Extrapolate(tt.in, false); got != tt.bwd {
			t.Errorf("Extrapolate(%v, false) = %d, want %d", tt.in, got, tt.bwd)
		}
	}
}

func TestInts(t *testing.T) {
	got := Ints(" 1", "22 ", "-3")
	if len(got) != 3 || got[0] != 1 || got[1] != 22 || got[2] != -3 {
		t.Errorf("Ints = %v, want [1 22 -3]", got)
	}
	if Sum(got...) != 20 {
		t.Errorf("Sum(%v) = %d, want 20", got, Sum(got...))
	}
}
