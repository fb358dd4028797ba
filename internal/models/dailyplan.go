// ABOUTME: DailyPlan model: the per-day session list picked by energy level.
// ABOUTME: Regenerating a plan overwrites any existing plan for that day.
package models

// EnergyLevel is the reported energy for a child's day.
type EnergyLevel string

const (
	EnergyNormal      EnergyLevel = "normal"
	EnergyLow         EnergyLevel = "low"
	EnergyOverwhelmed EnergyLevel = "overwhelmed"
)

// IsValidEnergyLevel checks if a string is a known energy level.
func IsValidEnergyLevel(s string) bool {
	switch EnergyLevel(s) {
	case EnergyNormal, EnergyLow, EnergyOverwhelmed:
		return true
	}
	return false
}

// PlanType identifies which session set a daily plan uses.
type PlanType string

const (
	PlanA PlanType = "A" // full day: four sessions
	PlanB PlanType = "B" // reduced day: two short sessions
)

// PlannedSession is one slot in a day's session plan, targeting a stream's
// current rung.
type PlannedSession struct {
	StreamID        string `json:"streamId"`
	LadderID        string `json:"ladderId"`
	TargetRungOrder int    `json:"targetRungOrder"`
	PlannedMinutes  int    `json:"plannedMinutes"`
	Label           string `json:"label"`
}

// DailyPlan is the generated session list for one child and date. At most
// one exists per (child, date); re-selecting energy replaces it.
type DailyPlan struct {
	ChildID  string           `json:"childId"`
	Date     string           `json:"date"` // YYYY-MM-DD
	Energy   EnergyLevel      `json:"energy"`
	PlanType PlanType         `json:"planType,omitempty"`
	Sessions []PlannedSession `json:"sessions"`
}
