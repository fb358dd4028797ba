// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hearthlog/hearth/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your family's hearth
data through a standardized protocol. The server communicates via
stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "hearth": {
        "command": "hearth",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_session    Log a practice session (hit/near/miss)
  record_win     Record a win toward a rung's milestone
  get_ladder     Get a ladder with derived rung statuses
  list_ladders   List a child's ladders
  get_today      Get today's blocks with statuses and instructions
  log_block      Log work on a day block
  set_energy     Set energy level and generate the day's plan
  get_plan       Get the stored plan for a day
  get_streak     Get practice and day-log streaks

AVAILABLE RESOURCES:

  hearth://today      Today's blocks for every child
  hearth://ladders    All ladders with rung statuses
  hearth://summary    Streaks, active rungs, and recent sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
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
