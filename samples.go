package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"
)

// Sample is a puzzle's example input and the answer it should produce.
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return Sample{}, false
	}
	return Sample{Want: strings.TrimSpace(m[1]), Input: m[2]}, true
}

// ExtractSamples parses Go source and returns the samples found in the
// doc comments of its top-level funcs, keyed by func name.
//
// A doc comment holds a line "want=ANSWER", optionally followed by the
// sample input. A func that gives only want= reuses the input of the
// closest preceding func that had one, so part 2 of a day can share the
// sample of part 1.
func ExtractSamples(src []byte) (map[string]Sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "puzzles.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := map[string]Sample{}
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.Input = Or(s.Input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.Input
			break
		}
	}
	return samples, nil
}
