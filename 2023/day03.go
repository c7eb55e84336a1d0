package main

import (
	"github.com/seedmap/aoc"
	"tailscale.com/util/deephash"
)

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	var sum int
	for _, n := range scanSchematic(s.Grid()).numbers {
		if len(n.symbols) > 0 {
			sum += n.value
		}
	}
	return sum
}

// want=467835
func (s solver) D3p2() any {
	sc := scanSchematic(s.Grid())
	var sum int
	for _, nums := range sc.gears {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return sum
}

type partNumber struct {
	value   int
	symbols []aoc.Pt // adjacent symbol cells
}

type schematic struct {
	numbers []partNumber
	gears   map[aoc.Pt][]int // '*' cell -> adjacent numbers
}

// schematics memoizes scanSchematic by grid contents; both parts scan the
// same grid.
var schematics = map[deephash.Sum]*schematic{}

func scanSchematic(g aoc.Grid[byte]) *schematic {
	h := g.Hash()
	if sc, ok := schematics[h]; ok {
		return sc
	}
	sc := &schematic{gears: map[aoc.Pt][]int{}}
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if !aoc.IsDigit(row[x]) {
				continue
			}
			var n partNumber
			seen := map[aoc.Pt]bool{}
			for ; x < len(row) && aoc.IsDigit(row[x]); x++ {
				n.value = n.value*10 + int(row[x]-'0')
				aoc.Pt{X: x, Y: y}.ForNeighbors(func(p aoc.Pt) bool {
					c, ok := g.AtOk(p)
					if !ok || c == '.' || aoc.IsDigit(c) || seen[p] {
						return true
					}
					seen[p] = true
					n.symbols = append(n.symbols, p)
					return true
				})
			}
			for _, p := range n.symbols {
				if g.At(p) == '*' {
					sc.gears[p] = append(sc.gears[p], n.value)
				}
			}
			sc.numbers = append(sc.numbers, n)
		}
	}
	schematics[h] = sc
	return sc
}
