// ABOUTME: WeekPlan model: shared weekly content context for instruction
// ABOUTME: resolution. Read-only input to the engine, edited via CLI forms.
package models

// BuildLab describes the week's build project.
type BuildLab struct {
	Title string   `json:"title"`
	Steps []string `json:"steps,omitempty"`
}

// ChildGoals holds one child's goal list for the week.
type ChildGoals struct {
	ChildID string   `json:"childId"`
	Goals   []string `json:"goals"`
}

// WeekPlan carries the weekly thematic content shared across the family's
// children. Its fields feed the instruction fallback chains.
type WeekPlan struct {
	StartDate     string       `json:"startDate"` // YYYY-MM-DD, Monday
	EndDate       string       `json:"endDate"`
	Theme         string       `json:"theme,omitempty"`
	Virtue        string       `json:"virtue,omitempty"`
	HeartQuestion string       `json:"heartQuestion,omitempty"`
	ScriptureRef  string       `json:"scriptureRef,omitempty"`
	FlywheelPlan  string       `json:"flywheelPlan,omitempty"`
	BuildLab      BuildLab     `json:"buildLab"`
	ChildGoals    []ChildGoals `json:"childGoals,omitempty"`
}

// GoalsFor returns the week's goal list for a child, or nil.
func (w *WeekPlan) GoalsFor(childID string) []string {
	if w == nil {
		return nil
	}
	for _, cg := range w.ChildGoals {
		if cg.ChildID == childID {
			return cg.Goals
		}
	}
	return nil
}

// Covers reports whether the given date falls inside the plan's week,
// boundaries inclusive. Lexicographic compare is valid for canonical dates.
func (w *WeekPlan) Covers(date string) bool {
	if w == nil {
		return false
	}
	return w.StartDate <= date && date <= w.EndDate
}
