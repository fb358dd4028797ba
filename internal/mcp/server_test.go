// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "hearth-mcp-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "hearth.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// seedLadder creates a child and a two-rung reading ladder.
func seedLadder(t *testing.T, db *storage.DB) (*models.Child, *models.Ladder) {
	t.Helper()

	child := models.NewChild("Miriam")
	if err := db.CreateChild(child); err != nil {
		t.Fatalf("CreateChild failed: %v", err)
	}

	ladder := models.NewLadder(child.ID, "Early Reading", models.StreamReading)
	ladder.Rungs = []models.Rung{
		models.NewRung("CVC words", 1),
		models.NewRung("Blends", 2),
	}
	if err := db.CreateLadder(ladder); err != nil {
		t.Fatalf("CreateLadder failed: %v", err)
	}
	return child, ladder
}

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleLogSession(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, ladder := seedLadder(t, db)

	tests := []struct {
		name      string
		input     logSessionInput
		wantErr   bool
		errSubstr string
	}{
		{
			name: "valid hit",
			input: logSessionInput{
				ChildID:         child.ID,
				StreamID:        models.StreamReading,
				LadderID:        ladder.ID,
				TargetRungOrder: 1,
				Result:          "hit",
			},
			wantErr: false,
		},
		{
			name: "valid near with extras",
			input: logSessionInput{
				ChildID:         child.ID,
				StreamID:        models.StreamReading,
				LadderID:        ladder.ID,
				TargetRungOrder: 1,
				Result:          "near",
				DurationMinutes: 10,
				Notes:           "tired today",
				Supports:        []string{"letter tiles"},
			},
			wantErr: false,
		},
		{
			name: "invalid result",
			input: logSessionInput{
				ChildID:         child.ID,
				StreamID:        models.StreamReading,
				LadderID:        ladder.ID,
				TargetRungOrder: 1,
				Result:          "sorta",
			},
			wantErr:   true,
			errSubstr: "unknown result",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogSession(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("Expected error containing %q, got %q", tt.errSubstr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if output.ID == "" {
				t.Error("Expected session ID in output")
			}
		})
	}
}

func TestHandleLogSessionLevelUp(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, ladder := seedLadder(t, db)

	input := logSessionInput{
		ChildID:         child.ID,
		StreamID:        models.StreamReading,
		LadderID:        ladder.ID,
		TargetRungOrder: 1,
		Result:          "hit",
	}

	var lastOutput logSessionOutput
	for i := 0; i < 3; i++ {
		_, out, err := server.handleLogSession(ctx, &mcp.CallToolRequest{}, input)
		if err != nil {
			t.Fatalf("handleLogSession failed: %v", err)
		}
		lastOutput = out
	}

	if !lastOutput.LevelUp {
		t.Error("Expected level up after three consecutive hits")
	}

	// A miss resets the window.
	input.Result = "miss"
	_, out, err := server.handleLogSession(ctx, &mcp.CallToolRequest{}, input)
	if err != nil {
		t.Fatalf("handleLogSession failed: %v", err)
	}
	if out.LevelUp {
		t.Error("Expected no level up after a miss")
	}
}

func TestHandleRecordWinPromotion(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, ladder := seedLadder(t, db)

	dates := []string{"2026-02-01", "2026-02-03", "2026-02-05", "2026-02-08", "2026-02-10"}
	var out recordWinOutput
	for _, date := range dates {
		var err error
		_, out, err = server.handleRecordWin(ctx, &mcp.CallToolRequest{}, recordWinInput{
			ChildID:  child.ID,
			LadderID: ladder.ID,
			Date:     date,
		})
		if err != nil {
			t.Fatalf("handleRecordWin failed: %v", err)
		}
	}

	if !out.Promoted {
		t.Error("Expected promotion at five total wins")
	}
	if out.Wins != 5 {
		t.Errorf("Expected 5 wins, got %d", out.Wins)
	}

	progress, err := db.GetProgress(child.ID, ladder.ID, ladder.Rungs[0].ID)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if progress.Status != models.StatusAchieved {
		t.Errorf("Expected achieved status, got %v", progress.Status)
	}
	if progress.AchievedAt != "2026-02-10" {
		t.Errorf("Expected achievedAt 2026-02-10, got %v", progress.AchievedAt)
	}
}

func TestHandleRecordWinDenseWindow(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, ladder := seedLadder(t, db)

	// Three wins inside seven days promote before five total.
	dates := []string{"2026-02-10", "2026-02-14", "2026-02-15"}
	var out recordWinOutput
	for _, date := range dates {
		var err error
		_, out, err = server.handleRecordWin(ctx, &mcp.CallToolRequest{}, recordWinInput{
			ChildID:  child.ID,
			LadderID: ladder.ID,
			Date:     date,
		})
		if err != nil {
			t.Fatalf("handleRecordWin failed: %v", err)
		}
	}

	if !out.Promoted {
		t.Error("Expected promotion with three wins in a seven-day window")
	}
}

func TestHandleRecordWinTargetsActiveRung(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, ladder := seedLadder(t, db)

	// Achieve rung 1 so the active rung advances to rung 2.
	p := models.NewMilestoneProgress(child.ID, ladder.ID, ladder.Rungs[0].ID)
	p.Status = models.StatusAchieved
	if err := db.PutProgress(p); err != nil {
		t.Fatalf("PutProgress failed: %v", err)
	}

	_, out, err := server.handleRecordWin(ctx, &mcp.CallToolRequest{}, recordWinInput{
		ChildID:  child.ID,
		LadderID: ladder.ID,
	})
	if err != nil {
		t.Fatalf("handleRecordWin failed: %v", err)
	}
	if out.RungID != ladder.Rungs[1].ID {
		t.Errorf("Expected win on rung 2, got rung %v", out.RungID)
	}
}

func TestHandleGetLadderStatuses(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, ladder := seedLadder(t, db)

	p := models.NewMilestoneProgress(child.ID, ladder.ID, ladder.Rungs[0].ID)
	p.Status = models.StatusAchieved
	if err := db.PutProgress(p); err != nil {
		t.Fatalf("PutProgress failed: %v", err)
	}

	_, result, err := server.handleGetLadder(ctx, &mcp.CallToolRequest{}, getLadderInput{
		LadderID: ladder.ID,
	})
	if err != nil {
		t.Fatalf("handleGetLadder failed: %v", err)
	}

	view, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("Expected map output, got %T", result)
	}
	if view["title"] != "Early Reading" {
		t.Errorf("Title mismatch: %v", view["title"])
	}
}

func TestHandleGetToday(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, _ := seedLadder(t, db)

	date := models.Today()
	log := models.NewDayLog(child.ID, date)
	log.Reading = &models.ReadingLog{Handwriting: models.ItemLog{Done: true}}
	if err := db.PutDayLog(log); err != nil {
		t.Fatalf("PutDayLog failed: %v", err)
	}

	_, result, err := server.handleGetToday(ctx, &mcp.CallToolRequest{}, getTodayInput{
		ChildID: child.ID,
	})
	if err != nil {
		t.Fatalf("handleGetToday failed: %v", err)
	}

	view, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("Expected map output, got %T", result)
	}
	if view["child"] != "Miriam" {
		t.Errorf("Child mismatch: %v", view["child"])
	}
}

func TestHandleLogBlock(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, _ := seedLadder(t, db)

	_, _, err := server.handleLogBlock(ctx, &mcp.CallToolRequest{}, logBlockInput{
		ChildID:   child.ID,
		BlockType: "math",
		Minutes:   20,
		Notes:     "fact drills",
		Date:      "2026-03-02",
	})
	if err != nil {
		t.Fatalf("handleLogBlock failed: %v", err)
	}

	log, err := db.GetDayLog(child.ID, "2026-03-02")
	if err != nil {
		t.Fatalf("GetDayLog failed: %v", err)
	}
	entry := log.BlockEntry(models.BlockMath)
	if entry == nil || entry.ActualMinutes != 20 || entry.Notes != "fact drills" {
		t.Errorf("Block entry mismatch: %+v", entry)
	}

	// Unknown block type rejected
	_, _, err = server.handleLogBlock(ctx, &mcp.CallToolRequest{}, logBlockInput{
		ChildID:   child.ID,
		BlockType: "recess",
	})
	if err == nil {
		t.Error("Expected error for unknown block type")
	}
}

func TestHandleSetEnergyGeneratesPlan(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, _ := seedLadder(t, db)

	_, result, err := server.handleSetEnergy(ctx, &mcp.CallToolRequest{}, setEnergyInput{
		ChildID: child.ID,
		Energy:  "normal",
		Date:    "2026-03-02",
	})
	if err != nil {
		t.Fatalf("handleSetEnergy failed: %v", err)
	}

	plan, ok := result.(*models.DailyPlan)
	if !ok {
		t.Fatalf("Expected *models.DailyPlan, got %T", result)
	}
	if plan.PlanType != models.PlanA {
		t.Errorf("Expected Plan A, got %v", plan.PlanType)
	}
	// Only the reading stream has a ladder, so only one session plans.
	if len(plan.Sessions) != 1 || plan.Sessions[0].StreamID != models.StreamReading {
		t.Errorf("Sessions mismatch: %+v", plan.Sessions)
	}

	// Overwhelmed regenerates with no sessions.
	_, result, err = server.handleSetEnergy(ctx, &mcp.CallToolRequest{}, setEnergyInput{
		ChildID: child.ID,
		Energy:  "overwhelmed",
		Date:    "2026-03-02",
	})
	if err != nil {
		t.Fatalf("handleSetEnergy failed: %v", err)
	}
	plan = result.(*models.DailyPlan)
	if len(plan.Sessions) != 0 {
		t.Errorf("Expected empty session list for overwhelmed, got %d", len(plan.Sessions))
	}

	stored, err := db.GetDailyPlan(child.ID, "2026-03-02")
	if err != nil {
		t.Fatalf("GetDailyPlan failed: %v", err)
	}
	if stored.Energy != models.EnergyOverwhelmed {
		t.Errorf("Expected stored plan replaced, got %v", stored.Energy)
	}
}

func TestHandleGetPlanMissing(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, _ := seedLadder(t, db)

	_, result, err := server.handleGetPlan(ctx, &mcp.CallToolRequest{}, getPlanInput{
		ChildID: child.ID,
		Date:    "2026-03-02",
	})
	if err != nil {
		t.Fatalf("handleGetPlan failed: %v", err)
	}
	view, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("Expected message map for missing plan, got %T", result)
	}
	if _, ok := view["message"]; !ok {
		t.Error("Expected message for missing plan")
	}
}

func TestHandleGetStreak(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	child, ladder := seedLadder(t, db)

	s := models.NewSession(child.ID, models.StreamReading, ladder.ID, 1, models.ResultHit)
	if err := db.AppendSession(s); err != nil {
		t.Fatalf("AppendSession failed: %v", err)
	}

	_, out, err := server.handleGetStreak(ctx, &mcp.CallToolRequest{}, getStreakInput{
		ChildID: child.ID,
	})
	if err != nil {
		t.Fatalf("handleGetStreak failed: %v", err)
	}
	if out.SessionStreak != 1 {
		t.Errorf("Expected 1-day session streak, got %d", out.SessionStreak)
	}
}

func TestResources(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()
	seedLadder(t, db)

	handlers := map[string]func(context.Context, *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error){
		"hearth://today":   server.handleTodayResource,
		"hearth://ladders": server.handleLaddersResource,
		"hearth://summary": server.handleSummaryResource,
	}

	for uri, handler := range handlers {
		result, err := handler(ctx, &mcp.ReadResourceRequest{})
		if err != nil {
			t.Fatalf("resource %s failed: %v", uri, err)
		}
		if len(result.Contents) != 1 {
			t.Fatalf("resource %s: expected 1 content, got %d", uri, len(result.Contents))
		}
		if result.Contents[0].URI != uri {
			t.Errorf("resource URI mismatch: got %s, want %s", result.Contents[0].URI, uri)
		}
		if result.Contents[0].Text == "" {
			t.Errorf("resource %s returned empty body", uri)
		}
	}
}
