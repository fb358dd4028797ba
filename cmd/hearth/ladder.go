// ABOUTME: CLI commands for skill ladders.
// ABOUTME: Seeding, listing, inspection, and recording milestone wins.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/catalog"
	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/progression"
	"github.com/spf13/cobra"
)

var (
	ladderAddStream string
	ladderAddRungs  []string
	winRungOrder    int
	winDate         string
)

var ladderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Manage skill ladders",
	Long: `Manage skill ladders: ordered milestone runs per learning stream.

Each rung starts locked. The first unachieved rung is active; recording
wins against it ("I watched her sound out 'ship'") accumulates toward
promotion. A rung is achieved after 5 total wins, or 3 wins within a week.

EXAMPLES:

  hearth ladder seed                  # Create the starter ladders
  hearth ladder list
  hearth ladder show <ladder-id>
  hearth ladder win <ladder-id>       # Record a win on the active rung
  hearth ladder win <ladder-id> --rung 3 --date 2026-08-27`,
}

var ladderSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the starter ladders",
	Long: `Create the five starter ladders (reading, writing, math, speech,
project) for the selected child. Skips streams that already have a ladder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, err := resolveChild()
		if err != nil {
			return err
		}
		if _, err := repo.GetChild(childID); err != nil {
			return err
		}

		existing, err := repo.ListLadders(childID)
		if err != nil {
			return fmt.Errorf("failed to list ladders: %w", err)
		}
		covered := make(map[string]bool)
		for _, l := range existing {
			covered[l.Stream] = true
		}

		created := 0
		for _, l := range catalog.Seed(childID) {
			if covered[l.Stream] {
				continue
			}
			if err := repo.CreateLadder(l); err != nil {
				return fmt.Errorf("failed to create ladder %q: %w", l.Title, err)
			}
			color.Green("✓ %s (%d rungs)", l.Title, len(l.Rungs))
			created++
		}

		if created == 0 {
			fmt.Println("All streams already have ladders. Nothing to do.")
		}
		return nil
	},
}

var ladderListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List ladders for a child",
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, err := resolveChild()
		if err != nil {
			return err
		}

		ladders, err := repo.ListLadders(childID)
		if err != nil {
			return fmt.Errorf("failed to list ladders: %w", err)
		}
		if len(ladders) == 0 {
			fmt.Println("No ladders yet. Run 'hearth ladder seed' to create the starters.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range ladders {
			statuses, err := ladderStatuses(l)
			if err != nil {
				return err
			}
			achieved := 0
			for _, s := range statuses.ByRungID {
				if s == models.StatusAchieved {
					achieved++
				}
			}
			active := "complete"
			if r := rungByID(l, statuses.ActiveRungID); r != nil {
				active = r.Title
			}
			fmt.Printf("%s %s %s  %d/%d  %s\n",
				faint.Sprint(l.ID[:8]),
				padRight(l.Stream, 8),
				padRight(l.Title, 24),
				achieved, len(l.Rungs),
				faint.Sprint(active))
		}
		return nil
	},
}

var ladderShowCmd = &cobra.Command{
	Use:   "show <ladder-id>",
	Short: "Show a ladder's rungs and progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ladder, err := findLadder(args[0])
		if err != nil {
			return err
		}
		statuses, err := ladderStatuses(ladder)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n\n", color.New(color.Bold).Sprint(ladder.Title), ladder.Stream)

		for _, r := range ladder.SortedRungs() {
			status := statuses.ByRungID[r.ID]
			wins := 0
			if p, err := repo.GetProgress(ladder.ChildID, ladder.ID, r.ID); err == nil && p != nil {
				wins = len(p.Wins)
			}

			var mark string
			switch status {
			case models.StatusAchieved:
				mark = color.GreenString("✓")
			case models.StatusActive:
				mark = color.YellowString("→")
			default:
				mark = color.New(color.Faint).Sprint("·")
			}

			line := fmt.Sprintf("%s %d. %s", mark, r.Order, r.Title)
			if wins > 0 && status != models.StatusAchieved {
				line += color.New(color.Faint).Sprintf("  (%d wins)", wins)
			}
			fmt.Println(line)
			if r.Description != "" && status == models.StatusActive {
				fmt.Printf("     %s\n", color.New(color.Faint).Sprint(r.Description))
			}
		}
		return nil
	},
}

var ladderAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a custom ladder",
	Long: `Create a custom ladder with your own rungs, in order.

Example:
  hearth ladder add "Piano Basics" --stream project \
    --rung "Finds middle C" --rung "Plays a 5-note scale"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, err := resolveChild()
		if err != nil {
			return err
		}
		if !validStream(ladderAddStream) {
			return fmt.Errorf("unknown stream: %s (want one of %s)",
				ladderAddStream, strings.Join(catalog.Streams(), ", "))
		}
		if len(ladderAddRungs) == 0 {
			return fmt.Errorf("a ladder needs at least one --rung")
		}

		ladder := models.NewLadder(childID, args[0], ladderAddStream)
		for i, title := range ladderAddRungs {
			ladder.Rungs = append(ladder.Rungs, models.NewRung(title, i+1))
		}

		if err := repo.CreateLadder(ladder); err != nil {
			return fmt.Errorf("failed to create ladder: %w", err)
		}

		color.Green("✓ Created %s (%d rungs)", ladder.Title, len(ladder.Rungs))
		fmt.Printf("  ID: %s\n", ladder.ID)
		return nil
	},
}

var ladderWinCmd = &cobra.Command{
	Use:   "win <ladder-id>",
	Short: "Record a win toward a rung's milestone",
	Long: `Record one observed success toward a rung. Targets the active rung
unless --rung gives an explicit order. Promotion happens at 5 total wins,
or 3 wins within a 7-day window.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ladder, err := findLadder(args[0])
		if err != nil {
			return err
		}

		var rung *models.Rung
		if winRungOrder > 0 {
			rung = ladder.RungByOrder(winRungOrder)
			if rung == nil {
				return fmt.Errorf("ladder has no rung %d", winRungOrder)
			}
		} else {
			statuses, err := ladderStatuses(ladder)
			if err != nil {
				return err
			}
			if statuses.ActiveRungID == "" {
				return fmt.Errorf("ladder is fully achieved; pass --rung to target a specific rung")
			}
			rung = rungByID(ladder, statuses.ActiveRungID)
		}

		date := winDate
		if date == "" {
			date = models.Today()
		}

		progress, err := repo.GetProgress(ladder.ChildID, ladder.ID, rung.ID)
		if err != nil {
			return err
		}
		if progress == nil {
			progress = models.NewMilestoneProgress(ladder.ChildID, ladder.ID, rung.ID)
		}

		progress.Wins = append(progress.Wins, models.Win{Date: date})

		promoted := false
		if progress.Status != models.StatusAchieved &&
			progression.EvaluateMilestonePromotion(progress.Wins, models.Today()) {
			progress.Status = models.StatusAchieved
			progress.AchievedAt = models.Today()
			promoted = true
		} else if progress.Status == models.StatusLocked {
			progress.Status = models.StatusActive
		}

		if err := repo.PutProgress(progress); err != nil {
			return fmt.Errorf("failed to save progress: %w", err)
		}

		color.Green("✓ Win recorded for %q (%d total)", rung.Title, len(progress.Wins))
		if promoted {
			color.New(color.Bold, color.FgGreen).Printf("★ Milestone achieved: %s\n", rung.Title)
		}
		return nil
	},
}

var ladderAdvanceCmd = &cobra.Command{
	Use:   "advance <ladder-id>",
	Short: "Mark the active rung achieved",
	Long: `Mark the ladder's active rung achieved, moving the active position to
the next rung. Use this when readiness is clear without the win count —
three straight hits in sessions, or a judgment call.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ladder, err := findLadder(args[0])
		if err != nil {
			return err
		}
		statuses, err := ladderStatuses(ladder)
		if err != nil {
			return err
		}
		if statuses.ActiveRungID == "" {
			return fmt.Errorf("ladder is already fully achieved")
		}
		rung := rungByID(ladder, statuses.ActiveRungID)

		progress, err := repo.GetProgress(ladder.ChildID, ladder.ID, rung.ID)
		if err != nil {
			return err
		}
		if progress == nil {
			progress = models.NewMilestoneProgress(ladder.ChildID, ladder.ID, rung.ID)
		}
		progress.Status = models.StatusAchieved
		progress.AchievedAt = models.Today()

		if err := repo.PutProgress(progress); err != nil {
			return fmt.Errorf("failed to save progress: %w", err)
		}

		color.New(color.Bold, color.FgGreen).Printf("★ Milestone achieved: %s\n", rung.Title)
		if next := ladder.RungByOrder(rung.Order + 1); next != nil {
			fmt.Printf("  Now working on: %s\n", next.Title)
		} else {
			fmt.Println("  Ladder complete!")
		}
		return nil
	},
}

// findLadder accepts a full ladder ID or a unique prefix of one belonging to
// the selected child.
func findLadder(id string) (*models.Ladder, error) {
	if ladder, err := repo.GetLadder(id); err == nil {
		return ladder, nil
	}

	childID, err := resolveChild()
	if err != nil {
		return nil, err
	}
	ladders, err := repo.ListLadders(childID)
	if err != nil {
		return nil, err
	}

	var match *models.Ladder
	for _, l := range ladders {
		if strings.HasPrefix(l.ID, id) || strings.EqualFold(l.Stream, id) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous ladder %q", id)
			}
			match = l
		}
	}
	if match == nil {
		return nil, fmt.Errorf("ladder not found: %s", id)
	}
	return match, nil
}

// ladderStatuses derives the positional rung statuses for a ladder from its
// stored progress records.
func ladderStatuses(l *models.Ladder) (progression.RungStatuses, error) {
	progress, err := repo.ListProgress(l.ChildID, l.ID)
	if err != nil {
		return progression.RungStatuses{}, fmt.Errorf("failed to load progress: %w", err)
	}
	byRung := make(map[string]*models.MilestoneProgress)
	for _, p := range progress {
		byRung[p.RungID] = p
	}
	return progression.DeriveRungStatuses(l.Rungs, byRung), nil
}

func rungByID(l *models.Ladder, id string) *models.Rung {
	for i := range l.Rungs {
		if l.Rungs[i].ID == id {
			return &l.Rungs[i]
		}
	}
	return nil
}

func validStream(s string) bool {
	for _, name := range catalog.Streams() {
		if s == name {
			return true
		}
	}
	return false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	ladderAddCmd.Flags().StringVar(&ladderAddStream, "stream", models.StreamProject, "learning stream")
	ladderAddCmd.Flags().StringArrayVar(&ladderAddRungs, "rung", nil, "rung title, in order (repeatable)")
	ladderWinCmd.Flags().IntVar(&winRungOrder, "rung", 0, "rung order to credit (defaults to the active rung)")
	ladderWinCmd.Flags().StringVar(&winDate, "date", "", "win date YYYY-MM-DD (defaults to today)")

	ladderCmd.AddCommand(ladderSeedCmd)
	ladderCmd.AddCommand(ladderListCmd)
	ladderCmd.AddCommand(ladderShowCmd)
	ladderCmd.AddCommand(ladderAddCmd)
	ladderCmd.AddCommand(ladderWinCmd)
	ladderCmd.AddCommand(ladderAdvanceCmd)
	rootCmd.AddCommand(ladderCmd)
}
