// ABOUTME: CLI commands for managing children.
// ABOUTME: Registration, defaults, profile bindings, and block order overrides.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/models"
	"github.com/spf13/cobra"
)

var (
	childAddBlocks  string
	childAddDefault bool
)

var childCmd = &cobra.Command{
	Use:   "child",
	Short: "Manage children",
	Long: `Manage the children tracked by hearth.

Each child has an ID slugged from their name (e.g. "Miriam" -> miriam) and
an optional block-order override for their school day.

EXAMPLES:

  hearth child add "Miriam" --default
  hearth child add "Zeke" --blocks formation,reading,math,movement
  hearth child list
  hearth child set-default zeke
  hearth child bind kitchen-tablet miriam`,
}

var childAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a child",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		child := models.NewChild(args[0])

		if childAddBlocks != "" {
			blocks, err := parseBlockList(childAddBlocks)
			if err != nil {
				return err
			}
			child.BlockOrder = blocks
		}

		if err := repo.CreateChild(child); err != nil {
			return fmt.Errorf("failed to add child: %w", err)
		}

		if childAddDefault {
			cfg.DefaultChild = child.ID
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save default child: %w", err)
			}
		}

		color.Green("✓ Added %s", child.Name)
		fmt.Printf("  ID: %s\n", child.ID)
		if childAddDefault {
			fmt.Println("  Set as default child.")
		}
		return nil
	},
}

var childListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List children",
	RunE: func(cmd *cobra.Command, args []string) error {
		children, err := repo.ListChildren()
		if err != nil {
			return fmt.Errorf("failed to list children: %w", err)
		}
		if len(children) == 0 {
			fmt.Println("No children yet. Add one with 'hearth child add <name>'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range children {
			marker := "  "
			if c.ID == cfg.DefaultChild {
				marker = color.GreenString("* ")
			}
			blocks := "default blocks"
			if len(c.BlockOrder) > 0 {
				blocks = fmt.Sprintf("%d custom blocks", len(c.BlockOrder))
			}
			fmt.Printf("%s%s %s %s\n", marker, padRight(c.Name, 16),
				faint.Sprint(c.ID), faint.Sprintf("(%s)", blocks))
		}
		return nil
	},
}

var childSetDefaultCmd = &cobra.Command{
	Use:   "set-default <id>",
	Short: "Set the default child",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		child, err := repo.GetChild(args[0])
		if err != nil {
			return err
		}

		cfg.DefaultChild = child.ID
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Default child is now %s", child.Name)
		return nil
	},
}

var childBindCmd = &cobra.Command{
	Use:   "bind <profile> <id>",
	Short: "Bind a device profile to a child",
	Long: `Bind a profile name to a child so shared devices resolve the right
learner. Commands read the HEARTH_PROFILE environment variable and use the
bound child when --child is omitted.

Example:
  hearth child bind kitchen-tablet miriam`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		child, err := repo.GetChild(args[1])
		if err != nil {
			return err
		}

		cfg.BindProfile(args[0], child.ID)
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Bound profile %q to %s", args[0], child.Name)
		return nil
	},
}

var childBlocksCmd = &cobra.Command{
	Use:   "blocks <id> <block,block,...>",
	Short: "Override a child's block order",
	Long: `Override the block sequence for a child's day. Pass a comma-separated
list of block types:

  formation, reading, writing, math, speech, together, movement, project,
  checklist

Pass "default" to clear the override and restore the full nine.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		child, err := repo.GetChild(args[0])
		if err != nil {
			return err
		}

		if args[1] == "default" {
			child.BlockOrder = nil
		} else {
			blocks, err := parseBlockList(args[1])
			if err != nil {
				return err
			}
			child.BlockOrder = blocks
		}

		if err := repo.UpdateChild(child); err != nil {
			return fmt.Errorf("failed to update child: %w", err)
		}

		color.Green("✓ Updated blocks for %s", child.Name)
		for _, bt := range child.Blocks() {
			fmt.Printf("  %s\n", models.BlockTitles[bt])
		}
		return nil
	},
}

var childRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a child",
	Long: `Remove a child record. Their ladders, sessions, and day logs are left
in place for export or re-linking.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		child, err := repo.GetChild(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Remove %s? Their history is kept. [y/N]: ", child.Name)
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := repo.DeleteChild(child.ID); err != nil {
			return fmt.Errorf("failed to remove child: %w", err)
		}
		color.Green("✓ Removed %s", child.Name)
		return nil
	},
}

func parseBlockList(s string) ([]models.BlockType, error) {
	var blocks []models.BlockType
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !models.IsValidBlockType(part) {
			return nil, fmt.Errorf("unknown block type: %s", part)
		}
		blocks = append(blocks, models.BlockType(part))
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("no block types given")
	}
	return blocks, nil
}

func init() {
	childAddCmd.Flags().StringVar(&childAddBlocks, "blocks", "", "comma-separated block order override")
	childAddCmd.Flags().BoolVar(&childAddDefault, "default", false, "set as the default child")

	childCmd.AddCommand(childAddCmd)
	childCmd.AddCommand(childListCmd)
	childCmd.AddCommand(childSetDefaultCmd)
	childCmd.AddCommand(childBindCmd)
	childCmd.AddCommand(childBlocksCmd)
	childCmd.AddCommand(childRemoveCmd)
	rootCmd.AddCommand(childCmd)
}
