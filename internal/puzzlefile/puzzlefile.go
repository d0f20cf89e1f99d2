// Package puzzlefile reads batch puzzle definitions for the CLI.
//
// File format:
//
//	puzzles:
//	  - term1: SEND
//	    term2: MORE
//	    result: MONEY
//	  - term1: CRACK
//	    term2: HACK
//	    result: ERROR
package puzzlefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Puzzle is one term1 + term2 = result entry.
type Puzzle struct {
	Term1  string `yaml:"term1"`
	Term2  string `yaml:"term2"`
	Result string `yaml:"result"`
}

// File is a batch of puzzles.
type File struct {
	Puzzles []Puzzle `yaml:"puzzles"`
}

// Load reads and parses a puzzle file. Word validation is left to the
// engine; Load only rejects files with no puzzles at all.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes puzzle file content.
func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing puzzle file: %w", err)
	}
	if len(f.Puzzles) == 0 {
		return nil, fmt.Errorf("puzzle file contains no puzzles")
	}
	return &f, nil
}
