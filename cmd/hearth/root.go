// ABOUTME: Root Cobra command for hearth CLI.
// ABOUTME: Handles config load and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/hearthlog/hearth/internal/config"
	"github.com/hearthlog/hearth/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	repo      storage.Repository
	childFlag string
)

var rootCmd = &cobra.Command{
	Use:   "hearth",
	Short: "Family skill-ladder and daily activity tracker",
	Long: `Hearth tracks each child's skill progression and daily school blocks.

WHAT IT TRACKS:

  Ladders     ordered skill milestones per stream (reading, writing, math,
              speech, project), advanced by practice sessions and wins
  Sessions    individual practice attempts scored hit/near/miss
  Day logs    the nine daily blocks, from morning formation to checklist
  Plans       energy-based session plans and the shared weekly theme

QUICK START:

  $ hearth child add "Miriam" --default    # Register a child
  $ hearth ladder seed                     # Create the starter ladders
  $ hearth today                           # See today's blocks
  $ hearth session log <ladder> hit        # Log a practice session
  $ hearth ladder win <ladder>             # Record an observed win
  $ hearth plan normal                     # Generate today's session plan

SYNC (AUTOMATIC):

  With the default Charm backend, data syncs across devices via Charm
  Cloud, E2E encrypted with your SSH key.

  $ hearth sync link      # Link device to your Charm account
  $ hearth sync status    # Check sync status

MCP INTEGRATION:

  Run 'hearth mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "hearth": { "command": "hearth", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in Charm KV under ~/.local/share/hearth by default. Set
  "backend": "sqlite" in ~/.config/hearth/config.json for a local-only
  SQLite database instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		switch cmd.Name() {
		case "version", "help", "install-skill":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// resolveChild returns the child ID for the current invocation: the --child
// flag, a HEARTH_PROFILE binding, or the configured default.
func resolveChild() (string, error) {
	id := cfg.ResolveChild(childFlag, os.Getenv("HEARTH_PROFILE"))
	if id == "" {
		return "", fmt.Errorf("no child selected: pass --child, or set a default with 'hearth child set-default <id>'")
	}
	return id, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&childFlag, "child", "c", "", "child ID (overrides the configured default)")
}
