// ABOUTME: Resolves each stream's current target rung from ladder progress.
// ABOUTME: Pure projection; callers load ladders and progress from storage.
package planner

import (
	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/progression"
)

// Targets resolves the current rung target for each stream from the child's
// ladders and their progress records. A fully achieved ladder contributes no
// target; if a child has several ladders on one stream, the first listed
// with an active rung wins.
func Targets(ladders []*models.Ladder, progressByLadder map[string][]*models.MilestoneProgress) map[string]StreamTarget {
	targets := make(map[string]StreamTarget)

	for _, l := range ladders {
		if _, done := targets[l.Stream]; done {
			continue
		}

		byRung := make(map[string]*models.MilestoneProgress)
		for _, p := range progressByLadder[l.ID] {
			byRung[p.RungID] = p
		}

		statuses := progression.DeriveRungStatuses(l.Rungs, byRung)
		if statuses.ActiveRungID == "" {
			continue
		}
		for _, r := range l.Rungs {
			if r.ID == statuses.ActiveRungID {
				targets[l.Stream] = StreamTarget{LadderID: l.ID, RungOrder: r.Order}
				break
			}
		}
	}

	return targets
}
