package cmd

import (
	"context"

	"github.com/spigell/career-mentor/internal/mcpserver"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the career tools over MCP on stdio",
	Run: func(_ *cobra.Command, _ []string) {
		ctx := context.Background()
		// stdout carries the protocol
		a := setup("stderr")
		defer a.close()

		// Train before the first request so a client does not time out on it.
		if err := a.cache.EnsureTrained(); err != nil {
			a.logger.Fatal("training the model", zap.Error(err))
		}

		server := mcpserver.New(mcpserver.Deps{
			Ranker:   a.engine,
			Catalog:  a.catalog,
			Insights: a.insights,
			Bot:      a.bot(ctx),
			Logger:   a.logger,
			User:     a.config.User,
		}, version)

		if err := server.ServeStdio(); err != nil {
			a.logger.Fatal("serving MCP", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
