// Command 2023 solves Advent of Code 2023.
package main

import (
	"embed"

	"github.com/seedmap/aoc"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
