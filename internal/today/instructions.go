// ABOUTME: Instruction resolution for block summaries.
// ABOUTME: Priority: week plan content > child goals > child template > defaults.
package today

import (
	"github.com/hearthlog/hearth/internal/models"
)

// MaxInstructions caps the resolved list per block.
const MaxInstructions = 2

// Instructions resolves the short instruction list for a block type using
// the fallback chain. Formation, together, and project blocks draw from the
// week plan first; every block falls back to the child's weekly goals, then
// a registered per-child template, then the generic defaults. Deterministic
// given identical inputs; no side effects.
func Instructions(bt models.BlockType, weekPlan *models.WeekPlan, child *models.Child) []string {
	if weekPlan != nil {
		if items := weekPlanInstructions(bt, weekPlan); len(items) > 0 {
			return capList(items)
		}
	}

	if weekPlan != nil && child != nil {
		if goals := weekPlan.GoalsFor(child.ID); len(goals) > 0 {
			return capList(goals)
		}
	}

	if child != nil {
		if tpl := templateFor(child.ID); tpl != nil {
			if items := tpl[bt]; len(items) > 0 {
				return capList(items)
			}
		}
	}

	return capList(defaultInstructions[bt])
}

// weekPlanInstructions builds the plan-content chain for the three block
// types that draw directly from the week plan.
func weekPlanInstructions(bt models.BlockType, wp *models.WeekPlan) []string {
	var items []string
	switch bt {
	case models.BlockFormation:
		if wp.Virtue != "" {
			items = append(items, "Virtue: "+wp.Virtue)
		}
		if wp.HeartQuestion != "" {
			items = append(items, wp.HeartQuestion)
		}
		if wp.ScriptureRef != "" {
			items = append(items, wp.ScriptureRef)
		}
	case models.BlockTogether:
		if wp.Theme != "" {
			items = append(items, "Theme: "+wp.Theme)
		}
		if wp.FlywheelPlan != "" {
			items = append(items, wp.FlywheelPlan)
		}
	case models.BlockProject:
		if wp.BuildLab.Title != "" {
			items = append(items, wp.BuildLab.Title)
		}
		if len(wp.BuildLab.Steps) > 0 {
			items = append(items, wp.BuildLab.Steps[0])
		}
	}
	return items
}

func capList(items []string) []string {
	if len(items) > MaxInstructions {
		return items[:MaxInstructions]
	}
	return items
}

// defaultInstructions is the generic fallback per block type.
var defaultInstructions = map[models.BlockType][]string{
	models.BlockFormation: {"Light a candle and read together", "Talk about the day ahead"},
	models.BlockReading:   {"Practice today's reading rung", "Read aloud for ten minutes"},
	models.BlockWriting:   {"Copywork or spelling practice", "Keep it short and end on a win"},
	models.BlockMath:      {"Work the current math rung", "Finish with a math game"},
	models.BlockSpeech:    {"Run the speech exercise list", "Slow and clear beats fast"},
	models.BlockTogether:  {"Pick a family activity", "Everyone participates"},
	models.BlockMovement:  {"Get outside if you can", "At least twenty minutes of movement"},
	models.BlockProject:   {"Continue the build project", "Photograph today's progress"},
	models.BlockChecklist: {"Work through the daily checklist"},
}
