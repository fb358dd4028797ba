// ABOUTME: CLI commands for energy-based daily session plans.
// ABOUTME: Generates, stores, and displays the day's planned sessions.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/planner"
	"github.com/spf13/cobra"
)

var planDate string

var planCmd = &cobra.Command{
	Use:   "plan [normal|low|overwhelmed]",
	Short: "Generate or show the day's session plan",
	Long: `Generate the day's session plan from the child's energy level:

  normal       Plan A: reading 15m, writing 10m, math 15m, project 20m
  low          Plan B: reading 10m, math 10m
  overwhelmed  no sessions; connection first, try again tomorrow

Each session targets the stream's current active rung. Re-running with a
different energy level replaces the stored plan. With no argument, shows
the stored plan for the day.

EXAMPLES:

  hearth plan normal
  hearth plan low --date 2026-08-27
  hearth plan`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return showPlan()
		}
		return generatePlan(args[0])
	},
}

func generatePlan(energy string) error {
	if !models.IsValidEnergyLevel(energy) {
		return fmt.Errorf("unknown energy level %q (want normal, low, or overwhelmed)", energy)
	}

	childID, err := resolveChild()
	if err != nil {
		return err
	}
	date := planDate
	if date == "" {
		date = models.Today()
	}

	ladders, err := repo.ListLadders(childID)
	if err != nil {
		return err
	}
	progressByLadder := make(map[string][]*models.MilestoneProgress)
	for _, l := range ladders {
		progress, err := repo.ListProgress(childID, l.ID)
		if err != nil {
			return err
		}
		progressByLadder[l.ID] = progress
	}

	targets := planner.Targets(ladders, progressByLadder)
	plan := planner.BuildPlan(childID, date, targets, models.EnergyLevel(energy))

	if err := repo.PutDailyPlan(plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	printPlan(plan)
	return nil
}

func showPlan() error {
	childID, err := resolveChild()
	if err != nil {
		return err
	}
	date := planDate
	if date == "" {
		date = models.Today()
	}

	plan, err := repo.GetDailyPlan(childID, date)
	if err != nil {
		return err
	}
	if plan == nil {
		fmt.Println("No plan for today. Generate one with 'hearth plan <energy>'.")
		return nil
	}

	printPlan(plan)
	return nil
}

func printPlan(plan *models.DailyPlan) {
	faint := color.New(color.Faint)

	switch plan.Energy {
	case models.EnergyOverwhelmed:
		fmt.Printf("%s — %s\n\n", plan.Date, faint.Sprint("overwhelmed day"))
		fmt.Println("No sessions today. Connection first; the ladders will keep.")
		return
	case models.EnergyLow:
		fmt.Printf("%s — Plan %s %s\n\n", plan.Date, plan.PlanType, faint.Sprint("(low energy)"))
	default:
		fmt.Printf("%s — Plan %s\n\n", plan.Date, plan.PlanType)
	}

	total := 0
	for _, s := range plan.Sessions {
		fmt.Printf("  %s %s\n", padRight(s.Label, 24), faint.Sprintf("%dm  rung %d", s.PlannedMinutes, s.TargetRungOrder))
		total += s.PlannedMinutes
	}
	fmt.Printf("\n%s\n", faint.Sprintf("%d sessions, %dm total", len(plan.Sessions), total))
}

func init() {
	planCmd.Flags().StringVar(&planDate, "date", "", "date YYYY-MM-DD (defaults to today)")
	rootCmd.AddCommand(planCmd)
}
