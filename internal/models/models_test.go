// ABOUTME: Tests for core record models.
// ABOUTME: Covers block ordering, ladder rung access, and week plan lookup.
package models

import (
	"testing"
)

func TestChildBlocksDefault(t *testing.T) {
	c := NewChild("Miles")

	blocks := c.Blocks()
	if len(blocks) != 9 {
		t.Fatalf("expected 9 default blocks, got %d", len(blocks))
	}
	if blocks[0] != BlockFormation {
		t.Errorf("first block = %s, want formation", blocks[0])
	}
	if blocks[8] != BlockChecklist {
		t.Errorf("last block = %s, want checklist", blocks[8])
	}
}

func TestChildBlocksOverride(t *testing.T) {
	c := NewChild("June")
	c.BlockOrder = []BlockType{BlockReading, BlockMath}

	blocks := c.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0] != BlockReading || blocks[1] != BlockMath {
		t.Errorf("override order not respected: %v", blocks)
	}
}

func TestSlugID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Miles", "miles"},
		{"  June Rose ", "june-rose"},
		{"ELLA", "ella"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlugID(tt.name); got != tt.want {
				t.Errorf("SlugID(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestLadderSortedRungs(t *testing.T) {
	l := NewLadder("miles", "CVC Words", StreamReading)
	l.Rungs = []Rung{
		NewRung("Blends", 3),
		NewRung("Short vowels", 1),
		NewRung("Digraphs", 2),
	}

	sorted := l.SortedRungs()
	for i, want := range []int{1, 2, 3} {
		if sorted[i].Order != want {
			t.Errorf("sorted[%d].Order = %d, want %d", i, sorted[i].Order, want)
		}
	}

	// Original slice must be untouched.
	if l.Rungs[0].Order != 3 {
		t.Error("SortedRungs mutated the ladder")
	}
}

func TestRungByOrder(t *testing.T) {
	l := NewLadder("miles", "Math Facts", StreamMath)
	l.Rungs = []Rung{NewRung("Count to 20", 1), NewRung("Add within 10", 2)}

	r := l.RungByOrder(2)
	if r == nil || r.Title != "Add within 10" {
		t.Errorf("RungByOrder(2) = %v, want Add within 10", r)
	}
	if l.RungByOrder(7) != nil {
		t.Error("expected nil for missing order")
	}
}

func TestWeekPlanCovers(t *testing.T) {
	wp := &WeekPlan{StartDate: "2026-02-16", EndDate: "2026-02-22"}

	tests := []struct {
		date string
		want bool
	}{
		{"2026-02-16", true},
		{"2026-02-19", true},
		{"2026-02-22", true},
		{"2026-02-15", false},
		{"2026-02-23", false},
	}

	for _, tt := range tests {
		if got := wp.Covers(tt.date); got != tt.want {
			t.Errorf("Covers(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}

	var none *WeekPlan
	if none.Covers("2026-02-16") {
		t.Error("nil plan should cover nothing")
	}
}

func TestWeekPlanGoalsFor(t *testing.T) {
	wp := &WeekPlan{
		ChildGoals: []ChildGoals{
			{ChildID: "miles", Goals: []string{"Read 3 CVC books"}},
		},
	}

	if goals := wp.GoalsFor("miles"); len(goals) != 1 {
		t.Errorf("expected 1 goal for miles, got %d", len(goals))
	}
	if goals := wp.GoalsFor("june"); goals != nil {
		t.Errorf("expected nil goals for june, got %v", goals)
	}
}

func TestDayLogEnsureBlock(t *testing.T) {
	d := NewDayLog("miles", "2026-02-16")

	b := d.EnsureBlock(BlockReading)
	if b.Title != "Reading" {
		t.Errorf("Title = %s, want Reading", b.Title)
	}

	b.ActualMinutes = 15
	again := d.EnsureBlock(BlockReading)
	if again.ActualMinutes != 15 {
		t.Error("EnsureBlock created a duplicate instead of returning the existing entry")
	}
	if len(d.Blocks) != 1 {
		t.Errorf("expected 1 block entry, got %d", len(d.Blocks))
	}
}
