// ABOUTME: CLI commands for the shared weekly plan.
// ABOUTME: Sets theme, virtue, build lab, and per-child goals; shows the week.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/models"
	"github.com/spf13/cobra"
)

var (
	weekStart     string
	weekTheme     string
	weekVirtue    string
	weekHeartQ    string
	weekScripture string
	weekFlywheel  string
	weekBuildLab  string
	weekBuildStep []string
	weekGoals     []string
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Manage the shared weekly plan",
	Long: `Manage the family's weekly plan: the theme, virtue, heart question,
scripture, flywheel focus, build-lab project, and per-child goals that feed
each block's instructions.

One plan covers a Monday-to-Sunday week. Setting fields for a week that
already has a plan updates it in place.

EXAMPLES:

  hearth week set --theme "Oceans" --virtue "Patience"
  hearth week set --build-lab "Cardboard submarine" \
    --build-step "Cut the hull" --build-step "Paint"
  hearth week set --child miriam --goal "Read a full Bob book"
  hearth week show`,
}

var weekSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set fields on the week's plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		start := weekStart
		if start == "" {
			start = mondayOf(time.Now())
		}
		startDay, err := time.Parse(models.DateLayout, start)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", start, err)
		}

		plan, err := repo.WeekPlanFor(start)
		if err != nil {
			return err
		}
		if plan == nil || plan.StartDate != start {
			plan = &models.WeekPlan{
				StartDate: start,
				EndDate:   startDay.AddDate(0, 0, 6).Format(models.DateLayout),
			}
		}

		if weekTheme != "" {
			plan.Theme = weekTheme
		}
		if weekVirtue != "" {
			plan.Virtue = weekVirtue
		}
		if weekHeartQ != "" {
			plan.HeartQuestion = weekHeartQ
		}
		if weekScripture != "" {
			plan.ScriptureRef = weekScripture
		}
		if weekFlywheel != "" {
			plan.FlywheelPlan = weekFlywheel
		}
		if weekBuildLab != "" {
			plan.BuildLab.Title = weekBuildLab
		}
		if len(weekBuildStep) > 0 {
			plan.BuildLab.Steps = weekBuildStep
		}
		if len(weekGoals) > 0 {
			childID, err := resolveChild()
			if err != nil {
				return err
			}
			setGoals(plan, childID, weekGoals)
		}

		if err := repo.PutWeekPlan(plan); err != nil {
			return fmt.Errorf("failed to save week plan: %w", err)
		}

		color.Green("✓ Week of %s updated", plan.StartDate)
		return nil
	},
}

var weekShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current week's plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := weekStart
		if date == "" {
			date = models.Today()
		}

		plan, err := repo.WeekPlanFor(date)
		if err != nil {
			return err
		}
		if plan == nil {
			fmt.Println("No plan covers this week. Start one with 'hearth week set'.")
			return nil
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n\n", bold.Sprintf("Week of %s", plan.StartDate),
			faint.Sprintf("(through %s)", plan.EndDate))

		printField("Theme", plan.Theme)
		printField("Virtue", plan.Virtue)
		printField("Heart question", plan.HeartQuestion)
		printField("Scripture", plan.ScriptureRef)
		printField("Flywheel", plan.FlywheelPlan)

		if plan.BuildLab.Title != "" {
			fmt.Printf("  %s %s\n", padRight("Build lab", 16), plan.BuildLab.Title)
			for i, step := range plan.BuildLab.Steps {
				fmt.Printf("  %s %s\n", padRight("", 16), faint.Sprintf("%d. %s", i+1, step))
			}
		}

		for _, cg := range plan.ChildGoals {
			fmt.Printf("  %s %s\n", padRight("Goals: "+cg.ChildID, 16), strings.Join(cg.Goals, "; "))
		}
		return nil
	},
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %s %s\n", padRight(label, 16), value)
}

func setGoals(plan *models.WeekPlan, childID string, goals []string) {
	for i := range plan.ChildGoals {
		if plan.ChildGoals[i].ChildID == childID {
			plan.ChildGoals[i].Goals = goals
			return
		}
	}
	plan.ChildGoals = append(plan.ChildGoals, models.ChildGoals{ChildID: childID, Goals: goals})
}

// mondayOf returns the Monday of the week containing t.
func mondayOf(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(models.DateLayout)
}

func init() {
	weekCmd.PersistentFlags().StringVar(&weekStart, "week", "", "week start date YYYY-MM-DD (defaults to this week's Monday)")
	weekSetCmd.Flags().StringVar(&weekTheme, "theme", "", "weekly theme")
	weekSetCmd.Flags().StringVar(&weekVirtue, "virtue", "", "virtue of the week")
	weekSetCmd.Flags().StringVar(&weekHeartQ, "heart-question", "", "heart question for formation")
	weekSetCmd.Flags().StringVar(&weekScripture, "scripture", "", "scripture reference")
	weekSetCmd.Flags().StringVar(&weekFlywheel, "flywheel", "", "flywheel focus for together time")
	weekSetCmd.Flags().StringVar(&weekBuildLab, "build-lab", "", "build-lab project title")
	weekSetCmd.Flags().StringArrayVar(&weekBuildStep, "build-step", nil, "build-lab step, in order (repeatable)")
	weekSetCmd.Flags().StringArrayVar(&weekGoals, "goal", nil, "weekly goal for the selected child (repeatable)")

	weekCmd.AddCommand(weekSetCmd)
	weekCmd.AddCommand(weekShowCmd)
	rootCmd.AddCommand(weekCmd)
}
