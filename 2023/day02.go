package main

import (
	"strings"

	"github.com/seedmap/aoc"
)

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	var sum int
	s.ForLines(func(line string) {
		g := parseGame(line)
		if g.red <= 12 && g.green <= 13 && g.blue <= 14 {
			sum += g.id
		}
	})
	return sum
}

// want=2286
func (s solver) D2p2() any {
	var sum int
	s.ForLines(func(line string) {
		g := parseGame(line)
		sum += g.red * g.green * g.blue
	})
	return sum
}

// game holds the most cubes of each color shown at once.
type game struct {
	id               int
	red, green, blue int
}

func parseGame(line string) game {
	id, rest, ok := strings.Cut(aoc.TrimPrefix(line, "Game "), ": ")
	if !ok {
		panic("bad game: " + line)
	}
	g := game{id: aoc.Int(id)}
	for _, set := range strings.Split(rest, ";") {
		for _, cube := range strings.Split(set, ",") {
			n, color, _ := strings.Cut(strings.TrimSpace(cube), " ")
			v := aoc.Int(n)
			switch color {
			case "red":
				g.red = max(g.red, v)
			case "green":
				g.green = max(g.green, v)
			case "blue":
				g.blue = max(g.blue, v)
			default:
				panic("bad color: " + color)
			}
		}
	}
	return g
}
