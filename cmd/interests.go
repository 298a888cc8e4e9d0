package cmd

import (
	"fmt"
	"strings"

	"github.com/spigell/career-mentor/internal/interest"

	"github.com/spf13/cobra"
)

var interestsCmd = &cobra.Command{
	Use:   "interests <text>",
	Short: "Score how strongly the text points at every career",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := setup()
		defer a.close()

		scores := interest.NewScorer(a.catalog).Scores(strings.Join(args, " "))

		w := cmd.OutOrStdout()
		for _, label := range a.catalog.Labels() {
			fmt.Fprintf(w, "%-28s %.1f\n", label, scores[label])
		}
	},
}

func init() {
	rootCmd.AddCommand(interestsCmd)
}
