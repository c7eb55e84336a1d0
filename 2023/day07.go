package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/seedmap/aoc"
)

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return s.winnings(false)
}

// want=5905
func (s solver) D7p2() any {
	return s.winnings(true)
}

type handKind int

const (
	highCard handKind = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type hand struct {
	kind  handKind
	cards [5]int // card strengths
	bid   int
}

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

func parseHand(line string, jokers bool) hand {
	cards, bid, ok := strings.Cut(line, " ")
	if !ok || len(cards) != 5 {
		panic("bad hand: " + line)
	}
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	h := hand{bid: aoc.Int(bid)}
	counts := map[byte]int{}
	var wild int
	for i := range 5 {
		c := cards[i]
		h.cards[i] = strings.IndexByte(order, c)
		if h.cards[i] < 0 {
			panic("bad card: " + string(c))
		}
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild
	h.kind = kindOf(groups)
	return h
}

// kindOf classifies a hand by its group sizes, largest first.
func kindOf(groups []int) handKind {
	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	}
	return highCard
}

func (s solver) winnings(jokers bool) int {
	var hands []hand
	s.ForLines(func(line string) {
		hands = append(hands, parseHand(line, jokers))
	})
	slices.SortFunc(hands, func(a, b hand) int {
		return cmp.Or(cmp.Compare(a.kind, b.kind), slices.Compare(a.cards[:], b.cards[:]))
	})
	var total int
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total
}
