// Package report renders solve outcomes as the classic three-line
// TASK / SOLUTION / RESULT report.
package report

import (
	"fmt"
	"strings"

	"github.com/cryptarith/cryptarith/pkg/alphametic"
)

// Render formats the outcome of solving term1 + term2 = result.
//
// For a solved puzzle:
//
//	TASK     : SEND + MORE = MONEY
//	SOLUTION : true
//	RESULT   : 9567 + 1085 = 10652
//
// The RESULT line prints each word digit-by-digit, so a result word
// assigned a leading zero keeps it. For an unsolvable puzzle SOLUTION
// is false and the RESULT line is "-".
func Render(term1, term2, result string, outcome alphametic.Outcome) string {
	term1 = strings.ToUpper(term1)
	term2 = strings.ToUpper(term2)
	result = strings.ToUpper(result)

	var b strings.Builder
	fmt.Fprintf(&b, "TASK     : %s + %s = %s\n", term1, term2, result)
	fmt.Fprintf(&b, "SOLUTION : %t\n", outcome.Found)

	if !outcome.Found {
		b.WriteString("RESULT   : -\n")
		return b.String()
	}

	n1, err := outcome.DigitString(term1)
	if err != nil {
		n1 = "?"
	}
	n2, err := outcome.DigitString(term2)
	if err != nil {
		n2 = "?"
	}
	n3, err := outcome.DigitString(result)
	if err != nil {
		n3 = "?"
	}
	fmt.Fprintf(&b, "RESULT   : %s + %s = %s\n", n1, n2, n3)
	return b.String()
}
