package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var infoCmd = &cobra.Command{
	Use:   "info <career>[,<career>...]",
	Short: "Show salary, demand and courses of careers",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := setup()
		defer a.close()

		var names []string
		for _, arg := range strings.Split(strings.Join(args, " "), ",") {
			if name := strings.TrimSpace(arg); name != "" {
				names = append(names, name)
			}
		}

		asJSON, _ := cmd.Flags().GetBool("output-json")
		infos := a.insights.Lookup(names)

		w := cmd.OutOrStdout()
		if asJSON {
			out, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				a.logger.Fatal("encoding career info", zap.Error(err))
			}
			fmt.Fprintln(w, string(out))
			return
		}

		for _, info := range infos {
			fmt.Fprintf(w, "%s\n  Salary: %s\n  Demand: %s\n", info.Name, info.Salary, info.Demand)
			for _, course := range info.Courses {
				fmt.Fprintf(w, "  Course: %s (%s) %s\n", course.Title, course.Provider, course.URL)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Bool("output-json", false, "print the records as json")
}
