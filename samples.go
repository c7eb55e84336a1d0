package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"regexp"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(funcName, comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractFileSamples returns the samples found in the doc comments of the
// functions in one Go source file. A sample without input reuses the input
// of the previous sample in the file.
func extractFileSamples(name string, src []byte, samples map[string]sample) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return err
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(funcName, c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return nil
}

// extractSamples reads the samples from every .go file at the root of fsys.
func extractSamples(fsys fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		if err := extractFileSamples(name, src, samples); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	return samples, nil
}

// RunSamples runs every part of slvr that has a sample in src as a subtest,
// checking its answer. slvr is as for Run.
func RunSamples(t *testing.T, src fs.FS, slvr any) {
	t.Helper()
	samples, err := extractSamples(src)
	if err != nil {
		t.Fatalf("extracting samples: %v", err)
	}
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		for _, ps := range days[d].parts {
			s, ok := samples[ps.Name]
			if !ok {
				continue
			}
			t.Run(ps.Name, func(t *testing.T) {
				p := &Puzzle{
					day:        days[d],
					SampleMode: true,
					solver:     ps,
					samples:    samples,
					log:        zaptest.NewLogger(t).Sugar(),
				}
				bind(slvr, p)
				if got := fmt.Sprint(ps.fn()); got != s.want {
					t.Errorf("got %v; want %v", got, s.want)
				}
			})
		}
	}
}
