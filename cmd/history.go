package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/career-mentor/internal/history"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved assessments",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved assessments, newest first",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()
		a := setup()
		defer a.close()

		items, err := a.history(ctx).List(ctx, a.config.User)
		if err != nil {
			a.logger.Fatal("listing history", zap.Error(err))
		}

		w := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintf(w, "No assessments saved for %s\n", a.config.User)
			return
		}
		for _, item := range items {
			top := make([]string, len(item.Top))
			for i, e := range item.Top {
				top[i] = fmt.Sprintf("%s %.1f%%", e.Career, e.Probability*100)
			}
			fmt.Fprintf(w, "%s  %s  %s\n", item.ID, item.CreatedAt.Local().Format("2006-01-02 15:04"), strings.Join(top, ", "))
		}
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one assessment or, with --all, every assessment of the user",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		a := setup()
		defer a.close()

		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		switch {
		case all && len(args) > 0:
			a.logger.Fatal("an id cannot be combined with --all")
		case !all && len(args) == 0:
			a.logger.Fatal("an id or --all is required")
		}

		store := a.history(ctx)

		if !all {
			err := store.Delete(ctx, a.config.User, args[0])
			if errors.Is(err, history.ErrNotFound) {
				a.logger.Fatal("assessment not found", zap.String("id", args[0]), zap.String("user", a.config.User))
			}
			if err != nil {
				a.logger.Fatal("deleting assessment", zap.Error(err))
			}
			a.logger.Info("assessment deleted", zap.String("id", args[0]))
			return
		}

		if !yes {
			prompt := promptui.Select{
				Label: fmt.Sprintf("Delete every assessment of %s?", a.config.User),
				Items: []string{PromptNo, PromptYes},
			}
			_, answer, err := prompt.Run()
			if err != nil {
				a.logger.Fatal("prompt failed", zap.Error(err))
			}
			if answer != PromptYes {
				a.logger.Info("nothing deleted")
				return
			}
		}

		deleted, err := store.DeleteAll(ctx, a.config.User)
		if err != nil {
			a.logger.Fatal("deleting history", zap.Error(err))
		}
		a.logger.Info("history deleted", zap.String("user", a.config.User), zap.Int64("deleted", deleted))
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the user's assessments to a temporary json file",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()
		a := setup()
		defer a.close()

		path, err := a.history(ctx).Export(ctx, a.fs, a.config.User)
		if err != nil {
			a.logger.Fatal("exporting history", zap.Error(err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyDeleteCmd, historyExportCmd)

	historyDeleteCmd.Flags().Bool("all", false, "delete every assessment of the user")
	historyDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}
