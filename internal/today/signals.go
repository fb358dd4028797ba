// ABOUTME: Per-block-type signal table for day log status derivation.
// ABOUTME: Each block type declares its logged and partial evidence checks.
package today

import (
	"github.com/hearthlog/hearth/internal/models"
)

// blockSignals holds the subject-specific evidence checks for one block
// type. logged wins over partial; the generic block-entry checks (actual
// minutes, block notes, block checklist) are layered on in blocks.go.
type blockSignals struct {
	logged  func(*models.DayLog) bool
	partial func(*models.DayLog) bool
}

// signalTable keys the sub-record checks by block type. The writing block
// intentionally reads the reading record: handwriting, spelling, and
// copywork live there.
var signalTable = map[models.BlockType]blockSignals{
	models.BlockFormation: {
		logged: func(d *models.DayLog) bool {
			return d.Formation != nil && d.Formation.Done
		},
		partial: func(d *models.DayLog) bool {
			return d.Formation != nil && d.Formation.Discussion != ""
		},
	},
	models.BlockReading: {
		logged: func(d *models.DayLog) bool {
			r := d.Reading
			if r == nil {
				return false
			}
			return anyDone(r.Phonics, r.SightWords, r.ReadAloud, r.Handwriting, r.Spelling, r.Copywork)
		},
		partial: func(d *models.DayLog) bool {
			r := d.Reading
			if r == nil {
				return false
			}
			return r.Notes != "" || anyNotes(r.Phonics, r.SightWords, r.ReadAloud, r.Handwriting, r.Spelling, r.Copywork)
		},
	},
	models.BlockWriting: {
		logged: func(d *models.DayLog) bool {
			r := d.Reading
			if r == nil {
				return false
			}
			return anyDone(r.Handwriting, r.Spelling, r.Copywork)
		},
		partial: func(d *models.DayLog) bool {
			r := d.Reading
			if r == nil {
				return false
			}
			return anyNotes(r.Handwriting, r.Spelling, r.Copywork)
		},
	},
	models.BlockMath: {
		logged: func(d *models.DayLog) bool {
			m := d.Math
			if m == nil {
				return false
			}
			return anyDone(m.Lesson, m.Facts, m.Game)
		},
		partial: func(d *models.DayLog) bool {
			m := d.Math
			if m == nil {
				return false
			}
			return m.Notes != "" || anyNotes(m.Lesson, m.Facts, m.Game)
		},
	},
	models.BlockSpeech: {
		logged: func(d *models.DayLog) bool {
			return d.Speech != nil && d.Speech.Done
		},
		partial: func(d *models.DayLog) bool {
			return d.Speech != nil && (d.Speech.Exercises != "" || d.Speech.Notes != "")
		},
	},
	models.BlockTogether: {
		logged: func(d *models.DayLog) bool {
			return d.Together != nil && d.Together.Done
		},
		partial: func(d *models.DayLog) bool {
			return d.Together != nil && d.Together.Activity != ""
		},
	},
	models.BlockMovement: {
		logged: func(d *models.DayLog) bool {
			return d.Movement != nil && (d.Movement.Done || d.Movement.Minutes > 0)
		},
		partial: func(d *models.DayLog) bool {
			return d.Movement != nil && d.Movement.Activity != ""
		},
	},
	models.BlockProject: {
		logged: func(d *models.DayLog) bool {
			return d.Project != nil && d.Project.Done
		},
		partial: func(d *models.DayLog) bool {
			return d.Project != nil && d.Project.Progress != ""
		},
	},
	models.BlockChecklist: {
		// The checklist block is logged only when every day-level item is
		// complete; a partially worked list is in progress.
		logged: func(d *models.DayLog) bool {
			if len(d.Checklist) == 0 {
				return false
			}
			for _, item := range d.Checklist {
				if !item.Done {
					return false
				}
			}
			return true
		},
		partial: func(d *models.DayLog) bool {
			for _, item := range d.Checklist {
				if item.Done {
					return true
				}
			}
			return false
		},
	},
}

func anyDone(items ...models.ItemLog) bool {
	for _, item := range items {
		if item.Done {
			return true
		}
	}
	return false
}

func anyNotes(items ...models.ItemLog) bool {
	for _, item := range items {
		if item.Notes != "" {
			return true
		}
	}
	return false
}
