package alphametic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSound verifies the §-level soundness guarantees of a Found
// outcome: injective assignment, non-zero leading addend digits, and an
// exact sum.
func checkSound(t *testing.T, p *Puzzle, o Outcome) {
	t.Helper()
	require.True(t, o.Found)

	seen := make(map[int]Letter)
	for l, d := range o.Assignment {
		require.GreaterOrEqual(t, d, 0)
		require.Less(t, d, Base)
		if prev, dup := seen[d]; dup {
			t.Fatalf("letters %c and %c share digit %d", prev, l, d)
		}
		seen[d] = l
	}
	require.Len(t, o.Assignment, p.Alphabet().Len())

	assert.NotZero(t, o.Assignment[p.Term1[0]], "leading letter of %s is zero", p.Term1)
	assert.NotZero(t, o.Assignment[p.Term2[0]], "leading letter of %s is zero", p.Term2)
	assert.Equal(t, o.ResultValue, o.Term1Value+o.Term2Value,
		"%d + %d != %d", o.Term1Value, o.Term2Value, o.ResultValue)
}

func TestSolveSendMoreMoney(t *testing.T) {
	o, err := Solve(context.Background(), "SEND", "MORE", "MONEY")
	require.NoError(t, err)
	require.True(t, o.Found)

	// The puzzle has a unique solution.
	assert.Equal(t, 9567, o.Term1Value)
	assert.Equal(t, 1085, o.Term2Value)
	assert.Equal(t, 10652, o.ResultValue)
	assert.Equal(t, map[Letter]int{
		'S': 9, 'E': 5, 'N': 6, 'D': 7,
		'M': 1, 'O': 0, 'R': 8, 'Y': 2,
	}, o.Assignment)
}

func TestSolveIsCaseInsensitive(t *testing.T) {
	upper, err := Solve(context.Background(), "SEND", "MORE", "MONEY")
	require.NoError(t, err)
	lower, err := Solve(context.Background(), "send", "more", "money")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestSolvePositivePuzzles(t *testing.T) {
	// Known-solvable puzzles from the built-in demo set.
	cases := []struct{ term1, term2, result string }{
		{"CRACK", "HACK", "ERROR"},
		{"SEND", "MORE", "MONEY"},
		{"AGONY", "JOY", "GUILT"},
		{"APPLE", "LEMON", "BANANA"},
		{"SYSTEMA", "ATIMA", "SCURITY"},
	}
	for _, tc := range cases {
		t.Run(tc.term1+"+"+tc.term2, func(t *testing.T) {
			p := mustPuzzle(t, tc.term1, tc.term2, tc.result)
			o, err := NewSolver(DefaultConfig()).Solve(context.Background(), p)
			require.NoError(t, err)
			checkSound(t, p, o)
		})
	}
}

func TestSolveBrokenEquation(t *testing.T) {
	o, err := Solve(context.Background(), "APPLE", "LEMON", "BANANAX")
	require.NoError(t, err, "an unsolvable puzzle is a result, not an error")
	assert.False(t, o.Found)
	assert.Nil(t, o.Assignment)
}

func TestSolveInvalidInput(t *testing.T) {
	cases := []struct{ term1, term2, result string }{
		{"", "ABC", "DEF"},
		{"ABC", "", "DEF"},
		{"ABC", "DEF", ""},
		{"A2C", "DEF", "GHI"},
		{"ABC", "DE-F", "GHI"},
	}
	for _, tc := range cases {
		_, err := Solve(context.Background(), tc.term1, tc.term2, tc.result)
		assert.ErrorIs(t, err, ErrInvalidInput, "%q %q %q", tc.term1, tc.term2, tc.result)
	}
}

func TestSolveDeterminism(t *testing.T) {
	cases := []struct{ term1, term2, result string }{
		{"SEND", "MORE", "MONEY"},
		{"CRACK", "HACK", "ERROR"},
		{"APPLE", "LEMON", "BANANA"},
	}
	for _, tc := range cases {
		first, err := Solve(context.Background(), tc.term1, tc.term2, tc.result)
		require.NoError(t, err)
		second, err := Solve(context.Background(), tc.term1, tc.term2, tc.result)
		require.NoError(t, err)
		assert.Equal(t, first, second, "%s + %s = %s not reproducible", tc.term1, tc.term2, tc.result)
	}
}

func TestSolveTenLetterBoundary(t *testing.T) {
	// AGONY + JOY = GUILT uses all ten digits: the domains saturate
	// exactly and the search must still terminate.
	p := mustPuzzle(t, "AGONY", "JOY", "GUILT")
	require.Equal(t, 10, p.Alphabet().Len())

	o, err := NewSolver(DefaultConfig()).Solve(context.Background(), p)
	require.NoError(t, err)
	checkSound(t, p, o)
}

func TestSolveElevenLettersIsUnsatisfiable(t *testing.T) {
	// More distinct letters than digits: the pigeonhole check fails
	// at the root and the solve reports NotFound.
	o, err := Solve(context.Background(), "ABCDE", "FGHIJ", "KAAAA")
	require.NoError(t, err)
	assert.False(t, o.Found)
}

func TestSolveSingleLetterPuzzles(t *testing.T) {
	// Fewer than 2 distinct letters is accepted and solved trivially
	// or rejected by the arithmetic, never an input error.
	o, err := Solve(context.Background(), "A", "A", "B")
	require.NoError(t, err)
	require.True(t, o.Found)
	assert.Equal(t, o.ResultValue, o.Term1Value+o.Term2Value)

	o, err = Solve(context.Background(), "A", "A", "A")
	require.NoError(t, err, "A + A = A forces A = 0, excluded by the leading-digit rule")
	assert.False(t, o.Found)
}

func TestSolveStats(t *testing.T) {
	p := mustPuzzle(t, "SEND", "MORE", "MONEY")
	solver := NewSolver(DefaultConfig())

	o, err := solver.Solve(context.Background(), p)
	require.NoError(t, err)
	require.True(t, o.Found)

	stats := solver.Stats()
	assert.Greater(t, stats.PropagationPasses, 0)
	assert.Greater(t, stats.Prunings, 0)
	assert.GreaterOrEqual(t, stats.Backtracks, 0)
}

func TestSolveNodeBudget(t *testing.T) {
	p := mustPuzzle(t, "SEND", "MORE", "MONEY")

	reference := NewSolver(DefaultConfig())
	o, err := reference.Solve(context.Background(), p)
	require.NoError(t, err)
	require.True(t, o.Found)
	nodes := reference.Stats().Nodes

	// A budget at least as large as the actual effort changes nothing.
	enough := NewSolver(Config{NodeBudget: nodes})
	o2, err := enough.Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, o, o2)

	// A smaller budget fails with ErrNodeBudget.
	if nodes > 1 {
		starved := NewSolver(Config{NodeBudget: nodes - 1})
		_, err := starved.Solve(context.Background(), p)
		require.ErrorIs(t, err, ErrNodeBudget)
	}
}

func TestSolveCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := mustPuzzle(t, "SEND", "MORE", "MONEY")
	_, err := NewSolver(DefaultConfig()).Solve(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolverIsReusable(t *testing.T) {
	solver := NewSolver(DefaultConfig())

	o1, err := solver.Solve(context.Background(), mustPuzzle(t, "SEND", "MORE", "MONEY"))
	require.NoError(t, err)
	require.True(t, o1.Found)

	o2, err := solver.Solve(context.Background(), mustPuzzle(t, "APPLE", "LEMON", "BANANAX"))
	require.NoError(t, err)
	assert.False(t, o2.Found)
}

func TestOutcomeDigitString(t *testing.T) {
	o, err := Solve(context.Background(), "SEND", "MORE", "MONEY")
	require.NoError(t, err)

	got, err := o.DigitString("MONEY")
	require.NoError(t, err)
	assert.Equal(t, "10652", got)

	_, err = o.DigitString("MONEZ")
	require.Error(t, err, "unassigned letter must be reported")
}
