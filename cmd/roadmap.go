package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <career>",
	Short: "Print the short learning roadmap of a career",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := setup()
		defer a.close()

		name := strings.Join(args, " ")
		if label, ok := a.catalog.Parse(name); ok {
			name = label.String()
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s:\n", name)
		for i, step := range a.catalog.Roadmap(name) {
			fmt.Fprintf(w, "%d. %s\n", i+1, step)
		}
	},
}

func init() {
	rootCmd.AddCommand(roadmapCmd)
}
