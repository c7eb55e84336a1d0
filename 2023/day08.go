package main

import (
	"strings"

	"github.com/seedmap/aoc"
)

/*
want=2

RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	n := s.parseNetwork()
	return n.steps("AAA", func(node string) bool { return node == "ZZZ" })
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	n := s.parseNetwork()
	var cycles []int
	for node := range n.nodes {
		if strings.HasSuffix(node, "A") {
			cycles = append(cycles, n.steps(node, func(node string) bool {
				return strings.HasSuffix(node, "Z")
			}))
		}
	}
	return aoc.LCM(cycles...)
}

type network struct {
	turns string
	nodes map[string][2]string
}

func (s solver) parseNetwork() network {
	n := network{nodes: map[string][2]string{}}
	s.ForLinesY(func(y int, line string) {
		switch {
		case y == 0:
			n.turns = strings.TrimSpace(line)
		case line == "":
		default:
			name, next, ok := strings.Cut(line, " = ")
			if !ok {
				panic("bad node: " + line)
			}
			left, right, ok := strings.Cut(strings.Trim(next, "()"), ", ")
			if !ok {
				panic("bad node: " + line)
			}
			n.nodes[name] = [2]string{left, right}
		}
	})
	return n
}

// steps follows the turns from start, cycling through them, until done
// reports true for the node reached.
func (n network) steps(start string, done func(string) bool) int {
	node := start
	for i := 0; ; i++ {
		next, ok := n.nodes[node]
		if !ok {
			panic("unknown node: " + node)
		}
		if n.turns[i%len(n.turns)] == 'L' {
			node = next[0]
		} else {
			node = next[1]
		}
		if done(node) {
			return i + 1
		}
	}
}
