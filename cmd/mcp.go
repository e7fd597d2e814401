package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/netcourse/netcourse/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the course lessons, hints, lesson search and the tutor to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		catalog, err := loadCatalog(cfg, logger)
		if err != nil {
			return err
		}
		idx, err := openLessonIndex(cfg, logger)
		if err != nil {
			return err
		}

		mcpserver.Version = Version
		// A nil *Index must not become a non-nil Searcher.
		var srv *mcpserver.Server
		if idx != nil {
			srv = mcpserver.NewServer(catalog, newChatClient(cfg, logger), idx)
		} else {
			srv = mcpserver.NewServer(catalog, newChatClient(cfg, logger), nil)
		}

		// Stdout carries the protocol; the logger writes to stderr.
		logger.Info("netcourse MCP server started on stdio", zap.Int("lessons", catalog.Count()), zap.Bool("search", idx != nil))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
