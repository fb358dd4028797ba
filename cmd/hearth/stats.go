// ABOUTME: CLI command for streaks and progress totals.
// ABOUTME: Summarizes sessions, milestones, and logging consistency.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/streak"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks and progress totals",
	Long: `Show the selected child's practice streak, day-log streak, session
result totals, and milestone counts across all ladders.

A streak counts consecutive days of activity ending today or yesterday, so
one missed day doesn't zero it until the day after.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, err := resolveChild()
		if err != nil {
			return err
		}
		child, err := repo.GetChild(childID)
		if err != nil {
			return err
		}

		sessions, err := repo.ListSessions(childID, 0)
		if err != nil {
			return err
		}
		dayLogs, err := repo.ListDayLogs(childID)
		if err != nil {
			return err
		}

		today := models.Today()
		sessionStreak := streak.FromSessions(sessions, childID, today)
		logStreak := streak.FromDayLogs(dayLogs, today)

		var hits, nears, misses int
		for _, s := range sessions {
			switch s.Result {
			case models.ResultHit:
				hits++
			case models.ResultNear:
				nears++
			case models.ResultMiss:
				misses++
			}
		}

		ladders, err := repo.ListLadders(childID)
		if err != nil {
			return err
		}
		var rungs, achieved int
		for _, l := range ladders {
			rungs += len(l.Rungs)
			statuses, err := ladderStatuses(l)
			if err != nil {
				return err
			}
			for _, s := range statuses.ByRungID {
				if s == models.StatusAchieved {
					achieved++
				}
			}
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		fmt.Println(bold.Sprint(child.Name))
		fmt.Println()
		fmt.Printf("  %s %s\n", padRight("Practice streak", 18), streakLabel(sessionStreak))
		fmt.Printf("  %s %s\n", padRight("Day-log streak", 18), streakLabel(logStreak))
		fmt.Printf("  %s %d %s\n", padRight("Sessions", 18), len(sessions),
			faint.Sprintf("(%d hit, %d near, %d miss)", hits, nears, misses))
		fmt.Printf("  %s %d/%d %s\n", padRight("Milestones", 18), achieved, rungs,
			faint.Sprintf("across %d ladders", len(ladders)))
		return nil
	},
}

func streakLabel(n int) string {
	switch n {
	case 0:
		return color.New(color.Faint).Sprint("none")
	case 1:
		return "1 day"
	}
	return color.GreenString("%d days", n)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
