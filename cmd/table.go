package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/showrank/internal/ui/components"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the correct order and the points table",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), components.PointsTable(rt.quiz).Render())
		return err
	},
}
