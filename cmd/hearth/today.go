// ABOUTME: CLI commands for the daily block view and day logging.
// ABOUTME: Derives block statuses and writes subject sub-records in place.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/today"
	"github.com/spf13/cobra"
)

var (
	todayDate    string
	todayMinutes int
	todayNotes   string
	todayDetail  string
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show and log today's blocks",
	Long: `Show the day's scheduled blocks with their derived status:

  ✓ logged        qualifying work recorded
  ~ in progress   partial evidence (notes, a checked item)
  · not started

Each block shows its instructions, resolved from the week plan when one
covers the date.

EXAMPLES:

  hearth today
  hearth today log reading phonics read-aloud --minutes 15
  hearth today log formation --detail "talked about patience"
  hearth today log math lesson facts
  hearth today check "fed the chickens"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showToday()
	},
}

var todayLogCmd = &cobra.Command{
	Use:   "log <block> [item...]",
	Short: "Log work on a block",
	Long: `Log work on one of the day's blocks. Items mark subject sub-records
done; which items apply depends on the block:

  reading    phonics, sight-words, read-aloud
  writing    handwriting, spelling, copywork
  math       lesson, facts, game
  checklist  any checklist item label

Blocks without sub-items (formation, speech, together, movement, project)
are marked done directly; --detail records what happened.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidBlockType(args[0]) {
			return fmt.Errorf("unknown block type: %s", args[0])
		}
		bt := models.BlockType(args[0])

		childID, err := resolveChild()
		if err != nil {
			return err
		}
		date := todayDate
		if date == "" {
			date = models.Today()
		}

		dayLog, err := repo.GetDayLog(childID, date)
		if err != nil {
			return err
		}
		if dayLog == nil {
			dayLog = models.NewDayLog(childID, date)
		}

		if err := applyBlockItems(dayLog, bt, args[1:]); err != nil {
			return err
		}

		entry := dayLog.EnsureBlock(bt)
		if todayMinutes > 0 {
			entry.ActualMinutes = todayMinutes
		}
		if todayNotes != "" {
			entry.Notes = todayNotes
		}

		if err := repo.PutDayLog(dayLog); err != nil {
			return fmt.Errorf("failed to save day log: %w", err)
		}

		color.Green("✓ Logged %s for %s", models.BlockTitles[bt], date)
		return nil
	},
}

var todayCheckCmd = &cobra.Command{
	Use:   "check <label>",
	Short: "Check off a checklist item",
	Long: `Mark a checklist item done for the day, adding it if it isn't on the
list yet. Matching is case-insensitive on the label.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, err := resolveChild()
		if err != nil {
			return err
		}
		date := todayDate
		if date == "" {
			date = models.Today()
		}

		dayLog, err := repo.GetDayLog(childID, date)
		if err != nil {
			return err
		}
		if dayLog == nil {
			dayLog = models.NewDayLog(childID, date)
		}

		found := false
		for i := range dayLog.Checklist {
			if strings.EqualFold(dayLog.Checklist[i].Label, args[0]) {
				dayLog.Checklist[i].Done = true
				found = true
				break
			}
		}
		if !found {
			dayLog.Checklist = append(dayLog.Checklist, models.ChecklistItem{Label: args[0], Done: true})
		}

		if err := repo.PutDayLog(dayLog); err != nil {
			return fmt.Errorf("failed to save day log: %w", err)
		}

		color.Green("✓ %s", args[0])
		return nil
	},
}

func showToday() error {
	childID, err := resolveChild()
	if err != nil {
		return err
	}
	child, err := repo.GetChild(childID)
	if err != nil {
		return err
	}

	date := todayDate
	if date == "" {
		date = models.Today()
	}

	weekPlan, err := repo.WeekPlanFor(date)
	if err != nil {
		return err
	}
	dayLog, err := repo.GetDayLog(childID, date)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("%s — %s", child.Name, date)
	if weekPlan != nil && weekPlan.Theme != "" {
		header += color.New(color.Faint).Sprintf("  (%s)", weekPlan.Theme)
	}
	fmt.Println(color.New(color.Bold).Sprint(header))
	fmt.Println()

	faint := color.New(color.Faint)
	for _, b := range today.Blocks(weekPlan, child, dayLog) {
		var mark, title string
		switch b.Status {
		case today.StatusLogged:
			mark = color.GreenString("✓")
			title = b.Title
		case today.StatusInProgress:
			mark = color.YellowString("~")
			title = b.Title
		default:
			mark = faint.Sprint("·")
			title = faint.Sprint(b.Title)
		}

		extra := ""
		if b.ActualMinutes > 0 {
			extra = faint.Sprintf("  %dm", b.ActualMinutes)
		}
		fmt.Printf("%s %s%s\n", mark, title, extra)

		if b.Status == today.StatusNotStarted {
			for _, inst := range b.Instructions {
				fmt.Printf("    %s\n", faint.Sprint(inst))
			}
		}
		if b.Notes != "" {
			fmt.Printf("    %s\n", faint.Sprint(b.Notes))
		}
	}
	return nil
}

// applyBlockItems marks the subject sub-records behind a block done. Items
// name sub-records for reading, writing, math, and checklist blocks; blocks
// without sub-items are marked done directly.
func applyBlockItems(d *models.DayLog, bt models.BlockType, items []string) error {
	switch bt {
	case models.BlockReading, models.BlockWriting:
		if d.Reading == nil {
			d.Reading = &models.ReadingLog{}
		}
		if len(items) == 0 {
			items = defaultItems(bt)
		}
		for _, item := range items {
			switch item {
			case "phonics":
				d.Reading.Phonics.Done = true
			case "sight-words":
				d.Reading.SightWords.Done = true
			case "read-aloud":
				d.Reading.ReadAloud.Done = true
			case "handwriting":
				d.Reading.Handwriting.Done = true
			case "spelling":
				d.Reading.Spelling.Done = true
			case "copywork":
				d.Reading.Copywork.Done = true
			default:
				return fmt.Errorf("unknown %s item: %s", bt, item)
			}
		}
	case models.BlockMath:
		if d.Math == nil {
			d.Math = &models.MathLog{}
		}
		if len(items) == 0 {
			items = defaultItems(bt)
		}
		for _, item := range items {
			switch item {
			case "lesson":
				d.Math.Lesson.Done = true
			case "facts":
				d.Math.Facts.Done = true
			case "game":
				d.Math.Game.Done = true
			default:
				return fmt.Errorf("unknown math item: %s", item)
			}
		}
	case models.BlockSpeech:
		if d.Speech == nil {
			d.Speech = &models.SpeechLog{}
		}
		d.Speech.Done = true
		if todayDetail != "" {
			d.Speech.Exercises = todayDetail
		}
	case models.BlockFormation:
		if d.Formation == nil {
			d.Formation = &models.FormationLog{}
		}
		d.Formation.Done = true
		if todayDetail != "" {
			d.Formation.Discussion = todayDetail
		}
	case models.BlockTogether:
		if d.Together == nil {
			d.Together = &models.TogetherLog{}
		}
		d.Together.Done = true
		if todayDetail != "" {
			d.Together.Activity = todayDetail
		}
	case models.BlockMovement:
		if d.Movement == nil {
			d.Movement = &models.MovementLog{}
		}
		d.Movement.Done = true
		if todayDetail != "" {
			d.Movement.Activity = todayDetail
		}
		if todayMinutes > 0 {
			d.Movement.Minutes = todayMinutes
		}
	case models.BlockProject:
		if d.Project == nil {
			d.Project = &models.ProjectLog{}
		}
		d.Project.Done = true
		if todayDetail != "" {
			d.Project.Progress = todayDetail
		}
	case models.BlockChecklist:
		for _, item := range items {
			found := false
			for i := range d.Checklist {
				if strings.EqualFold(d.Checklist[i].Label, item) {
					d.Checklist[i].Done = true
					found = true
					break
				}
			}
			if !found {
				d.Checklist = append(d.Checklist, models.ChecklistItem{Label: item, Done: true})
			}
		}
	}
	return nil
}

// defaultItems is what a bare 'today log reading' marks done: the core item
// for the block rather than the whole set.
func defaultItems(bt models.BlockType) []string {
	switch bt {
	case models.BlockReading:
		return []string{"read-aloud"}
	case models.BlockWriting:
		return []string{"handwriting"}
	case models.BlockMath:
		return []string{"lesson"}
	}
	return nil
}

func init() {
	todayCmd.PersistentFlags().StringVar(&todayDate, "date", "", "date YYYY-MM-DD (defaults to today)")
	todayLogCmd.Flags().IntVarP(&todayMinutes, "minutes", "m", 0, "actual minutes spent")
	todayLogCmd.Flags().StringVar(&todayNotes, "notes", "", "free-form notes on the block")
	todayLogCmd.Flags().StringVar(&todayDetail, "detail", "", "what happened (discussion, activity, progress)")

	todayCmd.AddCommand(todayLogCmd)
	todayCmd.AddCommand(todayCheckCmd)
	rootCmd.AddCommand(todayCmd)
}
