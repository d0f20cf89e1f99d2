// Package alphametic solves verbal-arithmetic puzzles of the form
// TERM1 + TERM2 = RESULT, assigning a unique decimal digit to each
// distinct letter so that the numeric equation holds.
//
// The engine is a small finite-domain constraint solver specialized to
// this puzzle class. A puzzle is compiled into three constraint kinds:
//
//   - NonZero: the leading letters of the two addends cannot be 0
//   - AllDifferent: no two letters share a digit
//   - ColumnSum: the base-10 equation, decomposed into per-column
//     digit sums with 0/1 carries
//
// Solving alternates constraint propagation (deducing forced domain
// reductions without guessing) with backtracking search over the
// remaining choices. Propagation is sound but deliberately incomplete;
// search compensates. The first full assignment found is returned, and
// repeated solves of the same input are digit-for-digit identical.
//
// Typical usage:
//
//	outcome, err := alphametic.Solve(ctx, "SEND", "MORE", "MONEY")
//	if err != nil {
//		// malformed input
//	}
//	if outcome.Found {
//		fmt.Println(outcome.Term1Value, outcome.Term2Value, outcome.ResultValue)
//	}
//
// Note that only the two addends' leading letters are forced non-zero.
// The result word's leading letter may be assigned 0, so an equation
// whose sum needs fewer digits than the result word still counts as
// solved. Outcome.DigitString preserves such leading zeros.
package alphametic
