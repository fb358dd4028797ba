// ABOUTME: Daily session plan generation from a reported energy level.
// ABOUTME: Plan A for normal days, Plan B for low days, nothing for overwhelmed.
package planner

import (
	"github.com/hearthlog/hearth/internal/models"
)

// StreamTarget is a stream's current rung, resolved by the caller from the
// ladder catalog and progress store.
type StreamTarget struct {
	LadderID  string
	RungOrder int
}

// slot is one template entry in a plan.
type slot struct {
	stream  string
	minutes int
	label   string
}

var planASlots = []slot{
	{models.StreamReading, 15, "Reading practice"},
	{models.StreamWriting, 10, "Writing & spelling"},
	{models.StreamMath, 15, "Math practice"},
	{models.StreamProject, 20, "Dad-Lab build"},
}

var planBSlots = []slot{
	{models.StreamReading, 10, "Short reading"},
	{models.StreamMath, 10, "Short math"},
}

// Generate builds the ordered session list for a child's day. normal yields
// the four-session Plan A, low the two-session Plan B, and overwhelmed
// yields no sessions at all: callers present only the formation block for
// those days. Streams with no resolved target are skipped rather than
// planned against a missing ladder.
func Generate(childID string, rungsByStream map[string]StreamTarget, energy models.EnergyLevel) []models.PlannedSession {
	var slots []slot
	switch energy {
	case models.EnergyNormal:
		slots = planASlots
	case models.EnergyLow:
		slots = planBSlots
	default:
		return nil
	}

	sessions := make([]models.PlannedSession, 0, len(slots))
	for _, sl := range slots {
		target, ok := rungsByStream[sl.stream]
		if !ok || target.LadderID == "" {
			continue
		}
		sessions = append(sessions, models.PlannedSession{
			StreamID:        sl.stream,
			LadderID:        target.LadderID,
			TargetRungOrder: target.RungOrder,
			PlannedMinutes:  sl.minutes,
			Label:           sl.label,
		})
	}
	return sessions
}

// BuildPlan wraps Generate into a DailyPlan document for persistence.
// Storing it replaces any existing plan for the (child, date) pair.
func BuildPlan(childID, date string, rungsByStream map[string]StreamTarget, energy models.EnergyLevel) *models.DailyPlan {
	plan := &models.DailyPlan{
		ChildID:  childID,
		Date:     date,
		Energy:   energy,
		Sessions: Generate(childID, rungsByStream, energy),
	}
	switch energy {
	case models.EnergyNormal:
		plan.PlanType = models.PlanA
	case models.EnergyLow:
		plan.PlanType = models.PlanB
	}
	return plan
}
