package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the career classifier and store the artifact",
	Run: func(cmd *cobra.Command, _ []string) {
		a := setup()
		defer a.close()

		force, _ := cmd.Flags().GetBool("force")
		if force {
			if err := a.cache.Remove(); err != nil {
				a.logger.Fatal("removing the stored model", zap.Error(err))
			}
		}

		if err := a.cache.EnsureTrained(); err != nil {
			a.logger.Fatal("training the model", zap.Error(err))
		}

		a.logger.Info("model is ready", zap.String("path", a.cache.Path()))
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().BoolP("force", "f", false, "discard the stored model and train a new one")
}
