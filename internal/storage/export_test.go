// ABOUTME: Tests for export, import, and backend migration.
// ABOUTME: Round-trips a populated database through the export snapshot.
package storage

import (
	"strings"
	"testing"

	"github.com/hearthlog/hearth/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	defer src.Close()

	seedTestData(t, src)

	data, err := src.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if data.Tool != "hearth" || data.Version != "1.0" {
		t.Errorf("Export header mismatch: %v %v", data.Tool, data.Version)
	}
	if len(data.Children) != 1 || len(data.Ladders) != 1 {
		t.Fatalf("Export counts wrong: %d children, %d ladders", len(data.Children), len(data.Ladders))
	}
	if len(data.Sessions) != 2 || len(data.DayLogs) != 1 {
		t.Fatalf("Export counts wrong: %d sessions, %d day logs", len(data.Sessions), len(data.DayLogs))
	}
	if len(data.WeekPlans) != 1 || len(data.DailyPlans) != 1 || len(data.Progress) != 1 {
		t.Fatalf("Export counts wrong: %d week plans, %d daily plans, %d progress",
			len(data.WeekPlans), len(data.DailyPlans), len(data.Progress))
	}

	dst := setupTestDB(t)
	defer dst.Close()

	if err := dst.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	child, err := dst.GetChild("miriam")
	if err != nil {
		t.Fatalf("GetChild after import failed: %v", err)
	}
	if child.Name != "Miriam" {
		t.Errorf("Imported child mismatch: %v", child.Name)
	}

	log, err := dst.GetDayLog("miriam", "2026-03-02")
	if err != nil {
		t.Fatalf("GetDayLog after import failed: %v", err)
	}
	if log == nil || log.Reading == nil || !log.Reading.Phonics.Done {
		t.Errorf("Imported day log mismatch: %+v", log)
	}

	plan, err := dst.WeekPlanFor("2026-03-04")
	if err != nil {
		t.Fatalf("WeekPlanFor after import failed: %v", err)
	}
	if plan == nil || plan.Theme != "Oceans" {
		t.Errorf("Imported week plan mismatch: %+v", plan)
	}
}

func TestExportJSONAndImportJSON(t *testing.T) {
	src := setupTestDB(t)
	defer src.Close()

	seedTestData(t, src)

	raw, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if !strings.Contains(string(raw), "\"tool\": \"hearth\"") {
		t.Error("Expected tool marker in JSON export")
	}

	dst := setupTestDB(t)
	defer dst.Close()

	if err := dst.ImportJSON(raw); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	children, err := dst.ListChildren()
	if err != nil {
		t.Fatalf("ListChildren failed: %v", err)
	}
	if len(children) != 1 {
		t.Errorf("Expected 1 child after JSON import, got %d", len(children))
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	seedTestData(t, db)

	raw, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "tool: hearth") {
		t.Error("Expected tool marker in YAML export")
	}
	if !strings.Contains(out, "Miriam") {
		t.Error("Expected child name grouping in YAML export")
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	seedTestData(t, db)

	out, err := db.ExportMarkdown("", "")
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "## Miriam") {
		t.Error("Expected child section in Markdown export")
	}
	if !strings.Contains(out, "Early Reading") {
		t.Error("Expected ladder table in Markdown export")
	}

	filtered, err := db.ExportMarkdown("", "2099-01-01")
	if err != nil {
		t.Fatalf("ExportMarkdown with since failed: %v", err)
	}
	if strings.Contains(filtered, "### Sessions") {
		t.Error("Expected sessions filtered out by since date")
	}
}

func TestMigrateDataBetweenBackends(t *testing.T) {
	src := setupTestDB(t)
	defer src.Close()

	seedTestData(t, src)

	dst := setupTestDB(t)
	defer dst.Close()

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Children != 1 || summary.Sessions != 2 {
		t.Errorf("Summary mismatch: %+v", summary)
	}
	if summary.Total() != 7 {
		t.Errorf("Total mismatch: got %d, want 7", summary.Total())
	}
}

func seedTestData(t *testing.T, db *DB) {
	t.Helper()

	child := models.NewChild("Miriam")
	if err := db.CreateChild(child); err != nil {
		t.Fatalf("seed child: %v", err)
	}

	ladder := models.NewLadder(child.ID, "Early Reading", models.StreamReading)
	ladder.Rungs = []models.Rung{models.NewRung("CVC words", 1), models.NewRung("Blends", 2)}
	if err := db.CreateLadder(ladder); err != nil {
		t.Fatalf("seed ladder: %v", err)
	}

	progress := models.NewMilestoneProgress(child.ID, ladder.ID, ladder.Rungs[0].ID)
	progress.Status = models.StatusAchieved
	progress.AchievedAt = "2026-03-01"
	if err := db.PutProgress(progress); err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	s1 := models.NewSession(child.ID, models.StreamReading, ladder.ID, 2, models.ResultHit).
		WithDate("2026-03-01")
	s2 := models.NewSession(child.ID, models.StreamReading, ladder.ID, 2, models.ResultNear).
		WithDate("2026-03-02")
	for _, s := range []*models.Session{s1, s2} {
		if err := db.AppendSession(s); err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}

	log := models.NewDayLog(child.ID, "2026-03-02")
	log.Reading = &models.ReadingLog{Phonics: models.ItemLog{Done: true}}
	if err := db.PutDayLog(log); err != nil {
		t.Fatalf("seed day log: %v", err)
	}

	week := &models.WeekPlan{
		StartDate: "2026-03-02",
		EndDate:   "2026-03-08",
		Theme:     "Oceans",
		Virtue:    "Patience",
	}
	if err := db.PutWeekPlan(week); err != nil {
		t.Fatalf("seed week plan: %v", err)
	}

	daily := &models.DailyPlan{
		ChildID:  child.ID,
		Date:     "2026-03-02",
		Energy:   models.EnergyNormal,
		PlanType: models.PlanA,
		Sessions: []models.PlannedSession{{
			StreamID:        models.StreamReading,
			LadderID:        ladder.ID,
			TargetRungOrder: 2,
			PlannedMinutes:  15,
			Label:           "Reading practice",
		}},
	}
	if err := db.PutDailyPlan(daily); err != nil {
		t.Fatalf("seed daily plan: %v", err)
	}
}
