// ABOUTME: CLI commands for exporting and importing hearth data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export hearth data",
	Long: `Export all hearth data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown progress report (for sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --child, -c    Limit the markdown report to one child
  --since        Only include sessions since this date (markdown only)

EXAMPLES:

  hearth export json -o backup.json
  hearth export yaml
  hearth export markdown --child miriam --since 2026-08-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch args[0] {
		case "json":
			data, err = storage.RenderJSON(all)
		case "yaml":
			data, err = storage.RenderYAML(all)
		case "markdown":
			if exportSince != "" {
				if _, err := time.Parse(models.DateLayout, exportSince); err != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
			}
			var md string
			md, err = storage.RenderMarkdown(all, childFlag, exportSince)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import hearth data from JSON",
	Long: `Import hearth data from a JSON backup file, as written by
'hearth export json'. Existing records with the same keys are overwritten.

EXAMPLES:

  hearth import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("invalid backup file: %w", err)
		}

		if err := repo.ImportData(&data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include sessions since date (markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
