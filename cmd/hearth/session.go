// ABOUTME: CLI commands for logging and listing practice sessions.
// ABOUTME: Announces level-up when three straight hits land on a rung.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/progression"
	"github.com/spf13/cobra"
)

var (
	sessionRungOrder int
	sessionMinutes   int
	sessionNotes     string
	sessionSupports  []string
	sessionDate      string
	sessionListLimit int
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Log and review practice sessions",
	Long: `Log practice attempts against a ladder rung, scored by outcome:

  hit   performed independently
  near  close, needed a prompt or support
  miss  not yet

Three hits in a row on a rung mean the child is ready to move up.

EXAMPLES:

  hearth session log reading hit
  hearth session log math near --minutes 12 --support "number line"
  hearth session list -n 10`,
}

var sessionLogCmd = &cobra.Command{
	Use:   "log <ladder-id> <hit|near|miss>",
	Short: "Log a practice session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ladder, err := findLadder(args[0])
		if err != nil {
			return err
		}
		if !models.IsValidResult(args[1]) {
			return fmt.Errorf("unknown result %q (want hit, near, or miss)", args[1])
		}

		order := sessionRungOrder
		if order == 0 {
			statuses, err := ladderStatuses(ladder)
			if err != nil {
				return err
			}
			rung := rungByID(ladder, statuses.ActiveRungID)
			if rung == nil {
				return fmt.Errorf("ladder is fully achieved; pass --rung to target a specific rung")
			}
			order = rung.Order
		} else if ladder.RungByOrder(order) == nil {
			return fmt.Errorf("ladder has no rung %d", order)
		}

		session := models.NewSession(ladder.ChildID, ladder.Stream, ladder.ID, order, models.Result(args[1]))
		if sessionMinutes > 0 {
			session.WithDuration(sessionMinutes * 60)
		}
		if sessionNotes != "" {
			session.WithNotes(sessionNotes)
		}
		if len(sessionSupports) > 0 {
			session.WithSupports(sessionSupports)
		}
		if sessionDate != "" {
			session.WithDate(sessionDate)
		}

		if err := repo.AppendSession(session); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		rung := ladder.RungByOrder(order)
		color.Green("✓ Logged %s on %q", session.Result, rung.Title)

		history, err := repo.ListRungSessions(ladder.ID, order)
		if err != nil {
			return err
		}
		if progression.EvaluateLevelUp(history, ladder.ID, order) {
			color.New(color.Bold, color.FgGreen).Printf("↑ Three hits in a row — %s is ready to level up!\n", rung.Title)
		}
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, err := resolveChild()
		if err != nil {
			return err
		}

		sessions, err := repo.ListSessions(childID, sessionListLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sessions {
			result := string(s.Result)
			switch s.Result {
			case models.ResultHit:
				result = color.GreenString("hit ")
			case models.ResultNear:
				result = color.YellowString("near")
			case models.ResultMiss:
				result = color.RedString("miss")
			}

			extra := ""
			if s.DurationSeconds != nil {
				extra = faint.Sprintf(" %dm", *s.DurationSeconds/60)
			}
			if s.Notes != nil && *s.Notes != "" {
				extra += faint.Sprintf(" (%s)", truncate(*s.Notes, 30))
			}

			fmt.Printf("%s %s %s rung %d %s%s\n",
				faint.Sprint(s.ID[:8]),
				faint.Sprint(s.Date),
				padRight(s.StreamID, 8),
				s.TargetRungOrder,
				result,
				extra)
		}
		return nil
	},
}

func init() {
	sessionLogCmd.Flags().IntVar(&sessionRungOrder, "rung", 0, "rung order (defaults to the active rung)")
	sessionLogCmd.Flags().IntVarP(&sessionMinutes, "minutes", "m", 0, "session duration in minutes")
	sessionLogCmd.Flags().StringVar(&sessionNotes, "notes", "", "session notes")
	sessionLogCmd.Flags().StringArrayVar(&sessionSupports, "support", nil, "support used (repeatable)")
	sessionLogCmd.Flags().StringVar(&sessionDate, "date", "", "session date YYYY-MM-DD (defaults to today)")
	sessionListCmd.Flags().IntVarP(&sessionListLimit, "limit", "n", 20, "max number of results")

	sessionCmd.AddCommand(sessionLogCmd)
	sessionCmd.AddCommand(sessionListCmd)
	rootCmd.AddCommand(sessionCmd)
}
