// ABOUTME: CLI commands for data migrations.
// ABOUTME: Rewrites legacy day-log keys and moves data between backends.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo     string
	migrateSwitch bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run data migrations",
	Long: `Run one-time data migrations.

SUBCOMMANDS:

  keys      Rewrite legacy day-log keys to the canonical {date}_{child} form
  backend   Copy all data to the other storage backend

EXAMPLES:

  hearth migrate keys
  hearth migrate backend --to sqlite --switch`,
}

var migrateKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Rewrite legacy day-log keys",
	Long: `Rewrite day-log records stored under legacy key formats
({child}_{date} or bare {date}) to the canonical {date}_{child} form.

Reads already fall back across the legacy formats, so this is cleanup, not
recovery. A legacy record whose canonical key is already taken is left in
place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := repo.MigrateDayLogKeys()
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if n == 0 {
			fmt.Println("No legacy day-log keys found.")
			return nil
		}
		color.Green("✓ Rewrote %d day-log key(s)", n)
		return nil
	},
}

var migrateBackendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Copy all data to the other storage backend",
	Long: `Copy every record from the current backend into the one named by
--to. Existing records in the target with the same keys are overwritten.

Pass --switch to also update the config so future commands use the target
backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch migrateTo {
		case "sqlite", "charm":
		case "":
			return fmt.Errorf("--to is required (sqlite or charm)")
		default:
			return fmt.Errorf("unknown backend: %q (use sqlite or charm)", migrateTo)
		}
		if migrateTo == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", migrateTo)
		}

		targetCfg := *cfg
		targetCfg.Backend = migrateTo
		dst, err := targetCfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open %s backend: %w", migrateTo, err)
		}
		defer dst.Close()

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d record(s) to %s", summary.Total(), migrateTo)
		faint := color.New(color.Faint)
		fmt.Println(faint.Sprintf("  children %d, ladders %d, progress %d, sessions %d",
			summary.Children, summary.Ladders, summary.Progress, summary.Sessions))
		fmt.Println(faint.Sprintf("  day logs %d, week plans %d, daily plans %d",
			summary.DayLogs, summary.WeekPlans, summary.DailyPlans))

		if migrateSwitch {
			cfg.Backend = migrateTo
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Printf("Config now uses the %s backend.\n", migrateTo)
		} else {
			fmt.Printf("Config still uses %s; set \"backend\": %q or re-run with --switch.\n",
				cfg.GetBackend(), migrateTo)
		}
		return nil
	},
}

func init() {
	migrateBackendCmd.Flags().StringVar(&migrateTo, "to", "", "target backend (sqlite or charm)")
	migrateBackendCmd.Flags().BoolVar(&migrateSwitch, "switch", false, "update config to use the target backend")

	migrateCmd.AddCommand(migrateKeysCmd)
	migrateCmd.AddCommand(migrateBackendCmd)
	rootCmd.AddCommand(migrateCmd)
}
