package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the career mentor; without a message starts an interactive session",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		a := setup()
		defer a.close()

		bot := a.bot(ctx)
		w := cmd.OutOrStdout()

		if len(args) > 0 {
			resp, err := bot.Ask(ctx, a.config.User, strings.Join(args, " "))
			if err != nil {
				a.logger.Fatal("answering", zap.Error(err))
			}
			fmt.Fprintln(w, resp.Reply)
			return
		}

		fmt.Fprintln(w, "Ask about careers, salaries, courses or roadmaps. Type exit to quit.")
		for {
			prompt := promptui.Prompt{Label: "You"}
			message, err := prompt.Run()
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return
			}
			if err != nil {
				a.logger.Fatal("prompt failed", zap.Error(err))
			}

			switch strings.ToLower(strings.TrimSpace(message)) {
			case "exit", "quit":
				return
			}

			resp, err := bot.Ask(ctx, a.config.User, message)
			if err != nil {
				a.logger.Error("answering", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "%s\n\n", resp.Reply)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
