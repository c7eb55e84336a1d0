// Package almanac maps seed numbers through a chain of piecewise-linear
// translation tables, either one value at a time or as whole intervals that
// get split at table boundaries.
package almanac

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
)

var (
	ErrEmptyRule = errors.New("almanac: rule length must be positive")
	ErrOverflow  = errors.New("almanac: range overflows uint64")
)

// Rule translates [Source, Source+Length) to [Target, Target+Length).
type Rule struct {
	Source uint64
	Target uint64
	Length uint64
}

// End is the exclusive end of the source span.
func (r Rule) End() uint64 {
	return r.Source + r.Length
}

// translate maps v, which must lie in [r.Source, r.End()], into the target
// span. v == r.End() is allowed so interval ends translate too.
func (r Rule) translate(v uint64) uint64 {
	return r.Target + (v - r.Source)
}

func (r Rule) String() string {
	return fmt.Sprintf("%d->%d+%d", r.Source, r.Target, r.Length)
}

// Interval is the half-open range [Start, End).
type Interval struct {
	Start uint64
	End   uint64
}

// Len returns the number of values in the interval.
func (iv Interval) Len() uint64 {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Empty reports whether the interval holds no values.
func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}

// Contains reports whether v is in the interval.
func (iv Interval) Contains(v uint64) bool {
	return iv.Start <= v && v < iv.End
}

// Intersect returns the overlap of iv and o. If they do not overlap the
// result is empty with unspecified bounds.
func (iv Interval) Intersect(o Interval) Interval {
	iv.Start = max(iv.Start, o.Start)
	iv.End = min(iv.End, o.End)
	if iv.End < iv.Start {
		iv.End = iv.Start
	}
	return iv
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// Table is one stage's set of rules, sorted by source. Values not covered by
// any rule map to themselves. A Table is immutable and safe for concurrent
// use.
//
// Rules must not overlap in their source spans; overlapping rules resolve in
// an unspecified way.
type Table struct {
	rules []Rule
}

// NewTable returns a Table holding a sorted copy of rules.
func NewTable(rules ...Rule) (*Table, error) {
	for _, r := range rules {
		if r.Length == 0 {
			return nil, fmt.Errorf("%w: %v", ErrEmptyRule, r)
		}
		if r.Length > math.MaxUint64-r.Source || r.Length > math.MaxUint64-r.Target {
			return nil, fmt.Errorf("%w: %v", ErrOverflow, r)
		}
	}
	rules = slices.Clone(rules)
	slices.SortFunc(rules, func(a, b Rule) int {
		return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.Length, b.Length))
	})
	return &Table{rules: rules}, nil
}

// Rules returns a copy of the sorted rules.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// upper returns the index of the first rule whose Source is greater than v.
func (t *Table) upper(v uint64) int {
	return sort.Search(len(t.rules), func(i int) bool {
		return t.rules[i].Source > v
	})
}

// ResolveValue maps a single value through the table.
func (t *Table) ResolveValue(v uint64) uint64 {
	i := t.upper(v)
	if i == 0 {
		return v
	}
	if r := t.rules[i-1]; v < r.End() {
		return r.translate(v)
	}
	return v
}

// ResolveInterval maps every value of in through the table and returns the
// resulting intervals. Their lengths always sum to in.Len().
func (t *Table) ResolveInterval(in Interval) []Interval {
	return t.AppendResolved(nil, in)
}

// AppendResolved is like ResolveInterval but appends to dst.
//
// The pieces of in that fall in gaps between rules are emitted unchanged,
// the pieces inside a rule are translated. Pieces are emitted in ascending
// source order.
func (t *Table) AppendResolved(dst []Interval, in Interval) []Interval {
	if in.Empty() {
		return dst
	}
	// Only the rule just before the first one starting past in.Start can
	// still cover in.Start; everything earlier ends before it.
	i := t.upper(in.Start)
	if i > 0 && t.rules[i-1].End() > in.Start {
		i--
	}
	rem := in
	for _, r := range t.rules[i:] {
		if rem.Start < r.Source {
			gap := min(rem.End, r.Source)
			dst = append(dst, Interval{rem.Start, gap})
			rem.Start = gap
			if rem.Empty() {
				return dst
			}
		}
		if rem.End <= r.End() {
			return append(dst, Interval{r.translate(rem.Start), r.translate(rem.End)})
		}
		dst = append(dst, Interval{r.translate(rem.Start), r.translate(r.End())})
		rem.Start = r.End()
	}
	return append(dst, rem)
}
