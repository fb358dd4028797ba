// ABOUTME: Tests for day log block status derivation.
// ABOUTME: Covers the nil-log case, precedence rules, and block overrides.
package today

import (
	"testing"

	"github.com/hearthlog/hearth/internal/models"
)

func testChild() *models.Child {
	return &models.Child{ID: "miles", Name: "Miles"}
}

func TestBlocksNilDayLog(t *testing.T) {
	blocks := Blocks(nil, testChild(), nil)

	if len(blocks) != len(models.DefaultBlockOrder) {
		t.Fatalf("expected %d blocks, got %d", len(models.DefaultBlockOrder), len(blocks))
	}
	for _, b := range blocks {
		if b.Status != StatusNotStarted {
			t.Errorf("%s = %s, want not_started with nil day log", b.Type, b.Status)
		}
	}
}

func TestBlocksChildOverrideOrder(t *testing.T) {
	c := testChild()
	c.BlockOrder = []models.BlockType{models.BlockMath, models.BlockReading}

	blocks := Blocks(nil, c, nil)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Type != models.BlockMath || blocks[1].Type != models.BlockReading {
		t.Errorf("override order not respected: %v, %v", blocks[0].Type, blocks[1].Type)
	}
}

func TestBlocksReadingLoggedViaSubItem(t *testing.T) {
	log := &models.DayLog{
		ChildID: "miles", Date: "2026-02-16",
		Reading: &models.ReadingLog{Handwriting: models.ItemLog{Done: true}},
	}

	blocks := Blocks(nil, testChild(), log)

	if got := statusOf(t, blocks, models.BlockReading); got != StatusLogged {
		t.Errorf("reading = %s, want logged when handwriting.done is set", got)
	}
	// Handwriting also satisfies the writing block.
	if got := statusOf(t, blocks, models.BlockWriting); got != StatusLogged {
		t.Errorf("writing = %s, want logged via the reading record", got)
	}
}

func TestBlocksActualMinutesLogAnyBlock(t *testing.T) {
	log := &models.DayLog{
		ChildID: "miles", Date: "2026-02-16",
		Blocks: []models.Block{{Type: models.BlockMovement, ActualMinutes: 25}},
	}

	blocks := Blocks(nil, testChild(), log)

	if got := statusOf(t, blocks, models.BlockMovement); got != StatusLogged {
		t.Errorf("movement = %s, want logged via actualMinutes", got)
	}
}

func TestBlocksNotesMeanInProgress(t *testing.T) {
	log := &models.DayLog{
		ChildID: "miles", Date: "2026-02-16",
		Math: &models.MathLog{Notes: "started the lesson, ran out of steam"},
	}

	blocks := Blocks(nil, testChild(), log)

	if got := statusOf(t, blocks, models.BlockMath); got != StatusInProgress {
		t.Errorf("math = %s, want in_progress with notes only", got)
	}
}

func TestBlocksLoggedBeatsPartialEvidence(t *testing.T) {
	log := &models.DayLog{
		ChildID: "miles", Date: "2026-02-16",
		Math: &models.MathLog{
			Lesson: models.ItemLog{Done: true},
			Notes:  "good focus today",
		},
	}

	blocks := Blocks(nil, testChild(), log)

	if got := statusOf(t, blocks, models.BlockMath); got != StatusLogged {
		t.Errorf("math = %s, want logged to win over partial evidence", got)
	}
}

func TestBlocksBlockChecklistPartial(t *testing.T) {
	log := &models.DayLog{
		ChildID: "miles", Date: "2026-02-16",
		Blocks: []models.Block{{
			Type: models.BlockProject,
			Checklist: []models.ChecklistItem{
				{Label: "gather parts", Done: true},
				{Label: "assemble", Done: false},
			},
		}},
	}

	blocks := Blocks(nil, testChild(), log)

	if got := statusOf(t, blocks, models.BlockProject); got != StatusInProgress {
		t.Errorf("project = %s, want in_progress with one checklist item done", got)
	}
}

func TestBlocksDayChecklistStates(t *testing.T) {
	tests := []struct {
		name  string
		items []models.ChecklistItem
		want  BlockStatus
	}{
		{"no items", nil, StatusNotStarted},
		{"none done", []models.ChecklistItem{{Label: "a"}, {Label: "b"}}, StatusNotStarted},
		{"some done", []models.ChecklistItem{{Label: "a", Done: true}, {Label: "b"}}, StatusInProgress},
		{"all done", []models.ChecklistItem{{Label: "a", Done: true}, {Label: "b", Done: true}}, StatusLogged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &models.DayLog{ChildID: "miles", Date: "2026-02-16", Checklist: tt.items}
			blocks := Blocks(nil, testChild(), log)
			if got := statusOf(t, blocks, models.BlockChecklist); got != tt.want {
				t.Errorf("checklist = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBlocksSpeechAndFormation(t *testing.T) {
	log := &models.DayLog{
		ChildID: "miles", Date: "2026-02-16",
		Speech:    &models.SpeechLog{Exercises: "r-blends list"},
		Formation: &models.FormationLog{Done: true},
	}

	blocks := Blocks(nil, testChild(), log)

	if got := statusOf(t, blocks, models.BlockSpeech); got != StatusInProgress {
		t.Errorf("speech = %s, want in_progress", got)
	}
	if got := statusOf(t, blocks, models.BlockFormation); got != StatusLogged {
		t.Errorf("formation = %s, want logged", got)
	}
}

func TestBlocksCarriesMinutesAndNotes(t *testing.T) {
	log := &models.DayLog{
		ChildID: "miles", Date: "2026-02-16",
		Blocks: []models.Block{{Type: models.BlockReading, ActualMinutes: 15, Notes: "two books"}},
	}

	blocks := Blocks(nil, testChild(), log)

	for _, b := range blocks {
		if b.Type == models.BlockReading {
			if b.ActualMinutes != 15 || b.Notes != "two books" {
				t.Errorf("block summary lost entry fields: %+v", b)
			}
			return
		}
	}
	t.Fatal("reading block missing from summary")
}

func statusOf(t *testing.T, blocks []TodayBlock, bt models.BlockType) BlockStatus {
	t.Helper()
	for _, b := range blocks {
		if b.Type == bt {
			return b.Status
		}
	}
	t.Fatalf("block %s not found", bt)
	return ""
}
