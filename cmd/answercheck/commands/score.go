package commands

import (
	"fmt"

	"answercheck/pkg/scorer"

	"github.com/spf13/cobra"
)

func newScoreCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "score <answer> <expected>",
		Short: "Score a single candidate answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := scorer.ScoreWithDetails(nil, args[0], args[1], strict)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "correct:        %t\n", result.Correct)
			fmt.Fprintf(out, "match type:     %s\n", result.MatchType)
			fmt.Fprintf(out, "strict correct: %t\n", result.StrictCorrect)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "disable fallback strategies")

	return cmd
}
