package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("almanac: malformed input")

// Almanac is a parsed puzzle input: the seed line and the stage chain.
type Almanac struct {
	Seeds    []uint64
	Pipeline *Pipeline
}

// SeedRanges reads Seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of seed values (%d)", ErrMalformed, len(a.Seeds))
	}
	out := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, n := a.Seeds[i], a.Seeds[i+1]
		if n > math.MaxUint64-start {
			return nil, fmt.Errorf("%w: seed range %d+%d", ErrOverflow, start, n)
		}
		out = append(out, Interval{start, start + n})
	}
	return out, nil
}

// Parse reads an almanac of the form
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Rule lines are "target source length". All seven stages must be present.
func Parse(r io.Reader, opts ...Option) (*Almanac, error) {
	var (
		a       Almanac
		stages  []Stage
		rules   []Rule
		cur     Category
		inStage bool
		gotSeed bool
		lineNo  int
	)
	flush := func() error {
		if !inStage {
			return nil
		}
		t, err := NewTable(rules...)
		if err != nil {
			return fmt.Errorf("stage %v: %w", cur, err)
		}
		stages = append(stages, Stage{Category: cur, Table: t})
		rules = nil
		inStage = false
		return nil
	}
	lineErr := func(err error) error {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, lineErr(err)
			}
		case strings.HasPrefix(line, "seeds:"):
			if gotSeed {
				return nil, lineErr(fmt.Errorf("%w: repeated seeds line", ErrMalformed))
			}
			gotSeed = true
			seeds, err := parseUints(strings.TrimPrefix(line, "seeds:"))
			if err != nil {
				return nil, lineErr(err)
			}
			a.Seeds = seeds
		case strings.HasSuffix(line, "map:"):
			if err := flush(); err != nil {
				return nil, lineErr(err)
			}
			c, err := ParseCategory(strings.TrimSpace(strings.TrimSuffix(line, "map:")))
			if err != nil {
				return nil, lineErr(err)
			}
			cur, inStage = c, true
		default:
			if !inStage {
				return nil, lineErr(fmt.Errorf("%w: rule outside of a map: %q", ErrMalformed, line))
			}
			rule, err := parseRule(line)
			if err != nil {
				return nil, lineErr(err)
			}
			rules = append(rules, rule)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, lineErr(err)
	}
	if !gotSeed {
		return nil, fmt.Errorf("%w: no seeds line", ErrMalformed)
	}
	p, err := NewPipeline(stages, opts...)
	if err != nil {
		return nil, err
	}
	a.Pipeline = p
	return &a, nil
}

func parseRule(line string) (Rule, error) {
	nums, err := parseUints(line)
	if err != nil {
		return Rule{}, err
	}
	if len(nums) != 3 {
		return Rule{}, fmt.Errorf("%w: rule %q has %d fields, want 3", ErrMalformed, line, len(nums))
	}
	return Rule{Target: nums[0], Source: nums[1], Length: nums[2]}, nil
}

func parseUints(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		out = append(out, v)
	}
	return out, nil
}
