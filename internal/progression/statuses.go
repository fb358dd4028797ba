// ABOUTME: Rung status derivation for rendering a ladder's progress.
// ABOUTME: Exactly one active rung unless the whole ladder is achieved.
package progression

import (
	"sort"

	"github.com/hearthlog/hearth/internal/models"
)

// RungStatuses is the derived display state for every rung in a ladder.
type RungStatuses struct {
	// ActiveRungID is the lowest-order rung not yet achieved, or empty when
	// the ladder is complete.
	ActiveRungID string
	ByRungID     map[string]models.MilestoneStatus
}

// DeriveRungStatuses projects a progress map onto a rung sequence. Rungs
// before the first unachieved rung render as achieved, that rung renders as
// active, and everything after it renders as locked, regardless of any
// stored status on later records. A missing progress record counts as
// unachieved.
func DeriveRungStatuses(rungs []models.Rung, progressByRungID map[string]*models.MilestoneProgress) RungStatuses {
	out := RungStatuses{ByRungID: make(map[string]models.MilestoneStatus, len(rungs))}

	// Defensive copy-and-sort; callers often pass ladder.Rungs directly.
	sorted := make([]models.Rung, len(rungs))
	copy(sorted, rungs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	activeFound := false
	for _, r := range sorted {
		if activeFound {
			out.ByRungID[r.ID] = models.StatusLocked
			continue
		}

		p := progressByRungID[r.ID]
		if p != nil && p.Status == models.StatusAchieved {
			out.ByRungID[r.ID] = models.StatusAchieved
			continue
		}

		out.ByRungID[r.ID] = models.StatusActive
		out.ActiveRungID = r.ID
		activeFound = true
	}

	return out
}
