// ABOUTME: Day log block status derivation: NotStarted/InProgress/Logged.
// ABOUTME: A pure projection recomputed from scratch on every call.
package today

import (
	"github.com/hearthlog/hearth/internal/models"
)

// BlockStatus is the derived tri-state completion of one scheduled block.
type BlockStatus string

const (
	StatusNotStarted BlockStatus = "not_started"
	StatusInProgress BlockStatus = "in_progress"
	StatusLogged     BlockStatus = "logged"
)

// TodayBlock is the UI-ready summary of one scheduled block for a day.
type TodayBlock struct {
	Type          models.BlockType
	Title         string
	Status        BlockStatus
	Instructions  []string
	ActualMinutes int
	Notes         string
}

// Blocks derives the block summaries for a child's day. The block sequence
// comes from the child's override list, else the default nine. A nil day
// log derives every block as NotStarted. Evidence precedence per block:
//
//  1. Logged: the subject sub-record reports a qualifying done flag, or the
//     block's own entry records actual minutes.
//  2. InProgress: free-text notes on the sub-record or block entry, or at
//     least one completed checklist item.
//  3. NotStarted.
func Blocks(weekPlan *models.WeekPlan, child *models.Child, dayLog *models.DayLog) []TodayBlock {
	order := child.Blocks()
	out := make([]TodayBlock, 0, len(order))

	for _, bt := range order {
		tb := TodayBlock{
			Type:         bt,
			Title:        models.BlockTitles[bt],
			Status:       StatusNotStarted,
			Instructions: Instructions(bt, weekPlan, child),
		}

		if dayLog != nil {
			tb.Status = deriveStatus(bt, dayLog)
			if entry := dayLog.BlockEntry(bt); entry != nil {
				tb.ActualMinutes = entry.ActualMinutes
				tb.Notes = entry.Notes
			}
		}

		out = append(out, tb)
	}
	return out
}

func deriveStatus(bt models.BlockType, dayLog *models.DayLog) BlockStatus {
	signals, known := signalTable[bt]
	entry := dayLog.BlockEntry(bt)

	if known && signals.logged(dayLog) {
		return StatusLogged
	}
	if entry != nil && entry.ActualMinutes > 0 {
		return StatusLogged
	}

	if known && signals.partial(dayLog) {
		return StatusInProgress
	}
	if entry != nil {
		if entry.Notes != "" {
			return StatusInProgress
		}
		for _, item := range entry.Checklist {
			if item.Done {
				return StatusInProgress
			}
		}
	}

	return StatusNotStarted
}
