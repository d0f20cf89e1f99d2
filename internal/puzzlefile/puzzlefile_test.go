package puzzlefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	raw := []byte(`puzzles:
  - term1: SEND
    term2: MORE
    result: MONEY
  - term1: CRACK
    term2: HACK
    result: ERROR
`)
	f, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, f.Puzzles, 2)
	assert.Equal(t, Puzzle{Term1: "SEND", Term2: "MORE", Result: "MONEY"}, f.Puzzles[0])
	assert.Equal(t, Puzzle{Term1: "CRACK", Term2: "HACK", Result: "ERROR"}, f.Puzzles[1])
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no puzzles", "puzzles: []\n"},
		{"wrong key", "problems:\n  - term1: A\n"},
		{"not yaml", "{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzles:\n  - term1: A\n    term2: B\n    result: C\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Puzzles, 1)
	assert.Equal(t, Puzzle{Term1: "A", Term2: "B", Result: "C"}, f.Puzzles[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
