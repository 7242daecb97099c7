// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the summary store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/namtonthat/healthsum/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout; logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "healthsum": {
        "command": "healthsum",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_daily_summary      Get the summary for one date
  list_daily_summaries   List recent daily summaries
  list_weekly_averages   List trailing 7-day averages
  compute_dots           Score a powerlifting total
  estimate_one_rep_max   Epley one-rep max estimate

AVAILABLE RESOURCES:

  healthsum://recent     Last 14 daily summaries
  healthsum://latest     Most recent daily summary
  healthsum://weekly     Trailing 7-day averages`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}

		server, err := mcp.NewServer(r)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
