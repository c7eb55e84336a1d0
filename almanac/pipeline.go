package almanac

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownStage   = errors.New("almanac: unknown stage")
	ErrMissingStage   = errors.New("almanac: missing stage")
	ErrDuplicateStage = errors.New("almanac: duplicate stage")
	ErrNoSeeds        = errors.New("almanac: no seeds")
)

// Category names one stage of the chain. Categories are declared in chain
// order.
type Category int

const (
	SeedToSoil Category = iota
	SoilToFertilizer
	FertilizerToWater
	WaterToLight
	LightToTemperature
	TemperatureToHumidity
	HumidityToLocation

	numCategories
)

var categoryNames = [numCategories]string{
	SeedToSoil:            "seed-to-soil",
	SoilToFertilizer:      "soil-to-fertilizer",
	FertilizerToWater:     "fertilizer-to-water",
	WaterToLight:          "water-to-light",
	LightToTemperature:    "light-to-temperature",
	TemperatureToHumidity: "temperature-to-humidity",
	HumidityToLocation:    "humidity-to-location",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory returns the Category for a header name like "seed-to-soil".
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStage, s)
}

// Stage pairs a Category with its Table.
type Stage struct {
	Category Category
	Table    *Table
}

// Pipeline is the fixed chain of stages from seed to location. It is
// immutable after construction and safe for concurrent use.
type Pipeline struct {
	stages []Stage
	logger *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger makes the Pipeline log per-stage progress at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPipeline builds a Pipeline from exactly one stage per Category. The
// stages may be given in any order; they run in Category order.
func NewPipeline(stages []Stage, opts ...Option) (*Pipeline, error) {
	var seen [numCategories]bool
	for _, s := range stages {
		if s.Category < 0 || s.Category >= numCategories {
			return nil, fmt.Errorf("%w: %v", ErrUnknownStage, s.Category)
		}
		if seen[s.Category] {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateStage, s.Category)
		}
		if s.Table == nil {
			return nil, fmt.Errorf("almanac: stage %v has no table", s.Category)
		}
		seen[s.Category] = true
	}
	for c, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingStage, Category(c))
		}
	}
	p := &Pipeline{
		stages: slices.Clone(stages),
		logger: zap.NewNop(),
	}
	slices.SortFunc(p.stages, func(a, b Stage) int {
		return int(a.Category) - int(b.Category)
	})
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// Stages returns the stages in chain order.
func (p *Pipeline) Stages() []Stage {
	return slices.Clone(p.stages)
}

// ResolveValue threads seed through every stage.
func (p *Pipeline) ResolveValue(seed uint64) uint64 {
	v := seed
	for _, s := range p.stages {
		v = s.Table.ResolveValue(v)
	}
	return v
}

// ResolveRanges threads seeds through every stage, splitting intervals at
// rule boundaries. The returned intervals are in no particular order and may
// touch or overlap each other.
func (p *Pipeline) ResolveRanges(seeds []Interval) []Interval {
	cur := slices.Clone(seeds)
	var next []Interval
	for _, s := range p.stages {
		next = next[:0]
		for _, iv := range cur {
			next = s.Table.AppendResolved(next, iv)
		}
		cur, next = next, cur
		if ce := p.logger.Check(zap.DebugLevel, "stage resolved"); ce != nil {
			ce.Write(zap.Stringer("stage", s.Category), zap.Int("intervals", len(cur)))
		}
	}
	return cur
}

// MinStart returns the smallest start among the non-empty intervals. ok is
// false if there are none.
func MinStart(ivs []Interval) (lowest uint64, ok bool) {
	lowest = math.MaxUint64
	for _, iv := range ivs {
		if iv.Empty() {
			continue
		}
		lowest = min(lowest, iv.Start)
		ok = true
	}
	return lowest, ok
}

// Lowest returns the smallest value any seed in ranges resolves to.
//
// Each range is resolved on its own goroutine, with at most workers running
// at once; workers <= 0 means one. It returns ErrNoSeeds if ranges holds no
// values.
func (p *Pipeline) Lowest(ctx context.Context, ranges []Interval, workers int) (uint64, error) {
	if workers <= 0 {
		workers = 1
	}
	lows := make([]uint64, len(ranges))
	found := make([]bool, len(ranges))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, r := range ranges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lows[i], found[i] = MinStart(p.ResolveRanges([]Interval{r}))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var lowest uint64 = math.MaxUint64
	var ok bool
	for i, f := range found {
		if f {
			lowest = min(lowest, lows[i])
			ok = true
		}
	}
	if !ok {
		return 0, ErrNoSeeds
	}
	p.logger.Debug("lowest location", zap.Int("ranges", len(ranges)), zap.Uint64("location", lowest))
	return lowest, nil
}
