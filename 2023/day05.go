package main

import (
	"bytes"
	"context"
	"math"

	"github.com/seedmap/aoc"
	"github.com/seedmap/aoc/almanac"
)

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := s.parseAlmanac()
	return aoc.ParallelMapFold(a.Seeds, a.Pipeline.ResolveValue, func(lowest, loc uint64) uint64 {
		return min(lowest, loc)
	}, uint64(math.MaxUint64))
}

// want=46
func (s solver) D5p2() any {
	a := s.parseAlmanac()
	ranges := aoc.MustGet(a.SeedRanges())
	s.Debugf("%d seed ranges: %v", len(ranges), ranges)
	return aoc.MustGet(a.Pipeline.Lowest(context.Background(), ranges, s.Workers()))
}

func (s solver) parseAlmanac() *almanac.Almanac {
	return aoc.MustGet(almanac.Parse(bytes.NewReader(s.Input()), almanac.WithLogger(s.Log().Desugar())))
}
