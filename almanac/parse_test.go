package almanac

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	a := parseExample(t)
	if diff := cmp.Diff([]uint64{79, 14, 55, 13}, a.Seeds); diff != "" {
		t.Errorf("Seeds mismatch (-want +got):\n%s", diff)
	}
	stages := a.Pipeline.Stages()
	if len(stages) != 7 {
		t.Fatalf("got %d stages, want 7", len(stages))
	}
	want := []Rule{
		{Target: 0, Source: 69, Length: 1},
		{Target: 1, Source: 0, Length: 69},
	}
	got := stages[TemperatureToHumidity].Table.Rules()
	// Rules come back sorted by source.
	want[0], want[1] = want[1], want[0]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("temperature-to-humidity rules mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCRLF(t *testing.T) {
	in := strings.ReplaceAll(example, "\n", "\r\n")
	a, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := a.Pipeline.ResolveValue(13); got != 35 {
		t.Errorf("ResolveValue(13) = %d, want 35", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "unknown stage",
			in:   strings.Replace(example, "water-to-light", "water-to-wine", 1),
			want: ErrUnknownStage,
		},
		{
			name: "missing stage",
			in:   example[:strings.Index(example, "humidity-to-location")],
			want: ErrMissingStage,
		},
		{
			name: "duplicate stage",
			in:   example + "\nseed-to-soil map:\n1 2 3\n",
			want: ErrDuplicateStage,
		},
		{
			name: "short rule",
			in:   strings.Replace(example, "50 98 2", "50 98", 1),
			want: ErrMalformed,
		},
		{
			name: "non-numeric",
			in:   strings.Replace(example, "52 50 48", "52 fifty 48", 1),
			want: ErrMalformed,
		},
		{
			name: "negative",
			in:   strings.Replace(example, "52 50 48", "52 -50 48", 1),
			want: ErrMalformed,
		},
		{
			name: "zero length",
			in:   strings.Replace(example, "50 98 2", "50 98 0", 1),
			want: ErrEmptyRule,
		},
		{
			name: "rule before map",
			in:   "seeds: 1 2\n\n1 2 3\n",
			want: ErrMalformed,
		},
		{
			name: "no seeds",
			in:   example[strings.Index(example, "seed-to-soil"):],
			want: ErrMalformed,
		},
		{
			name: "repeated seeds",
			in:   "seeds: 1 2\n" + example,
			want: ErrMalformed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseErrorNamesLine(t *testing.T) {
	in := strings.Replace(example, "52 50 48", "52 50 x", 1)
	_, err := Parse(strings.NewReader(in))
	if err == nil || !strings.HasPrefix(err.Error(), "line 5:") {
		t.Errorf("Parse err = %v, want it to start with %q", err, "line 5:")
	}
}

func TestSeedRanges(t *testing.T) {
	a := &Almanac{Seeds: []uint64{79, 14, 55, 13}}
	got, err := a.SeedRanges()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Interval{{79, 93}, {55, 68}}, got); diff != "" {
		t.Errorf("SeedRanges mismatch (-want +got):\n%s", diff)
	}

	a.Seeds = []uint64{1, 2, 3}
	if _, err := a.SeedRanges(); !errors.Is(err, ErrMalformed) {
		t.Errorf("SeedRanges(odd) err = %v, want %v", err, ErrMalformed)
	}
	a.Seeds = []uint64{math.MaxUint64 - 1, 2}
	if _, err := a.SeedRanges(); !errors.Is(err, ErrOverflow) {
		t.Errorf("SeedRanges(overflow) err = %v, want %v", err, ErrOverflow)
	}
}
