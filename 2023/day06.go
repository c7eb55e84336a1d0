package main

import (
	"math"
	"strings"

	"github.com/seedmap/aoc"
)

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	lines := s.Lines()
	times := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[0], "Time:"))...)
	dists := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[1], "Distance:"))...)
	product := 1
	for i, t := range times {
		product *= waysToWin(t, dists[i])
	}
	return product
}

// want=71503
func (s solver) D6p2() any {
	lines := s.Lines()
	t := aoc.Int(strings.ReplaceAll(aoc.TrimPrefix(lines[0], "Time:"), " ", ""))
	d := aoc.Int(strings.ReplaceAll(aoc.TrimPrefix(lines[1], "Distance:"), " ", ""))
	return waysToWin(t, d)
}

// waysToWin counts the whole hold times h in [0, t] with h*(t-h) > record.
// Those are the integers strictly between the roots of h^2 - t*h + record.
func waysToWin(t, record int) int {
	hi, lo := aoc.SolveQuad(1, -t, record)
	n := int(math.Ceil(hi)) - int(math.Floor(lo)) - 1
	return max(n, 0)
}
