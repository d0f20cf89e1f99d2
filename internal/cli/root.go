// Package cli implements the cryptarith command.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cryptarith/cryptarith/internal/puzzlefile"
	"github.com/cryptarith/cryptarith/internal/report"
	"github.com/cryptarith/cryptarith/pkg/alphametic"
)

// samplePuzzles is the demo set solved when the command is run without
// arguments. APPLE + LEMON = BANANAX is a deliberately broken equation.
var samplePuzzles = []puzzlefile.Puzzle{
	{Term1: "CRACK", Term2: "HACK", Result: "ERROR"},
	{Term1: "SEND", Term2: "MORE", Result: "MONEY"},
	{Term1: "AGONY", Term2: "JOY", Result: "GUILT"},
	{Term1: "APPLE", Term2: "LEMON", Result: "BANANA"},
	{Term1: "APPLE", Term2: "LEMON", Result: "BANANAX"},
	{Term1: "SYSTEMA", Term2: "ATIMA", Result: "SCURITY"},
}

// NewRootCmd builds the cryptarith command tree.
func NewRootCmd() *cobra.Command {
	var (
		file    string
		verbose bool
		budget  int
	)

	cmd := &cobra.Command{
		Use:   "cryptarith [TERM1 TERM2 RESULT]",
		Short: "Solve verbal-arithmetic puzzles of the form TERM1 + TERM2 = RESULT",
		Long: strings.TrimSpace(`
cryptarith assigns a unique decimal digit to each distinct letter of a
verbal-arithmetic puzzle so that TERM1 + TERM2 = RESULT holds as a sum.

With three arguments it solves that single puzzle. With --file it solves
every puzzle in a YAML batch file. Without arguments it runs the built-in
demo set.`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("expected no arguments or exactly TERM1 TERM2 RESULT, got %d", len(args))
			}
			if len(args) == 3 && file != "" {
				return fmt.Errorf("--file cannot be combined with puzzle arguments")
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.Nop()
			if verbose {
				logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
					Level(zerolog.DebugLevel).
					With().Timestamp().Logger()
			}

			puzzles := samplePuzzles
			switch {
			case len(args) == 3:
				puzzles = []puzzlefile.Puzzle{{Term1: args[0], Term2: args[1], Result: args[2]}}
			case file != "":
				f, err := puzzlefile.Load(file)
				if err != nil {
					return err
				}
				puzzles = f.Puzzles
			}

			solver := alphametic.NewSolver(alphametic.Config{
				NodeBudget: budget,
				Logger:     logger,
			})

			for i, pz := range puzzles {
				puzzle, err := alphametic.NewPuzzle(pz.Term1, pz.Term2, pz.Result)
				if err != nil {
					return err
				}
				outcome, err := solver.Solve(cmd.Context(), puzzle)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprint(cmd.OutOrStdout(), report.Render(pz.Term1, pz.Term2, pz.Result, outcome))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with a batch of puzzles")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().IntVar(&budget, "budget", 0, "search node budget, 0 for unlimited")

	return cmd
}
