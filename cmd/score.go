package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/showrank/internal/quiz"
	"github.com/abhisek/showrank/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   `score "<show>,<show>,..."`,
	Short: "Score an ordering without starting the UI",
	Long: `Scores a comma-separated ordering of every show in the quiz, top to bottom.
Names are matched case-insensitively.

Example:
  showrank score "Seinfeld,Star Trek,The Simpsons,Friends,The Office (US),Breaking Bad,Game of Thrones,Squid Games"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := quiz.ParseOrdering(rt.quiz, args[0])
		if err != nil {
			return fmt.Errorf("parse ordering: %w", err)
		}

		res := scoring.Score(rt.quiz, order)
		rt.logger.Info("ordering scored",
			zap.Strings("order", order.Strings()),
			zap.Int("total", res.Total))

		return printResult(cmd.OutOrStdout(), rt.quiz, res)
	},
}

// printResult writes one line per position followed by the total.
func printResult(w io.Writer, q *quiz.Quiz, res scoring.Result) error {
	for _, it := range res.Items {
		if _, err := fmt.Fprintf(w, "%s (%s) - %d points [%s]\n",
			it.Item, it.Expected, it.Points, it.Proximity); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total Score: %d/%d\n", res.Total, q.BestScore())
	return err
}
