// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, and reset operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/charm"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync hearth data across devices",
	Long: `Sync hearth data across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload. The server
never sees your family's unencrypted records.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     hearth sync link

  2. On other devices, link with the same Charm account:
     hearth sync link

  3. Check sync status:
     hearth sync status

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  reset       Reset local data and restore from cloud (destructive)

Data syncs automatically after each write. Sync commands require the
Charm backend; they do nothing for a SQLite-only setup.`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Your hearth data will now sync automatically across devices.")

		if client, ok := repo.(*charm.Client); ok {
			if err := client.Sync(); err != nil {
				color.Yellow("⚠ Initial sync failed: %v", err)
			} else {
				color.Green("✓ Initial sync complete")
			}
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local hearth data. You can link again later with
'hearth sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local hearth data is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, ok := repo.(*charm.Client)
		if !ok {
			color.Yellow("Sync is only available with the charm backend.")
			fmt.Printf("\nCurrent backend: %s\n", cfg.GetBackend())
			return nil
		}

		id, err := client.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'hearth sync link' to connect to Charm.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		fmt.Println()

		children, _ := repo.ListChildren()
		color.Green("✓ Connected to Charm")
		fmt.Printf("  Children: %d\n", len(children))
		for _, c := range children {
			sessions, _ := repo.ListSessions(c.ID, 0)
			logs, _ := repo.ListDayLogs(c.ID)
			fmt.Printf("    %s: %d sessions, %d day logs\n", c.Name, len(sessions), len(logs))
		}
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.

This is a destructive operation. All local data will be lost and restored
from cloud. Use this to fix sync conflicts or reset a device to cloud
state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, ok := repo.(*charm.Client)
		if !ok {
			return fmt.Errorf("reset requires the charm backend (current: %s)", cfg.GetBackend())
		}

		fmt.Println("This will DELETE all local hearth data and restore from cloud.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := client.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ Local data reset and restored from cloud")
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncResetCmd)
	rootCmd.AddCommand(syncCmd)
}
