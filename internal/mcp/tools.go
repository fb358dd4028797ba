// ABOUTME: MCP tool implementations for hearth progression tracking.
// ABOUTME: Session logging, wins, day logs, energy plans, and streaks.
package mcp

import (
	"context"
	"fmt"

	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/planner"
	"github.com/hearthlog/hearth/internal/progression"
	"github.com/hearthlog/hearth/internal/streak"
	"github.com/hearthlog/hearth/internal/today"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_session",
		Description: "Record a practice session (hit/near/miss) against a ladder rung and report whether the rung leveled up",
	}, s.handleLogSession)

	// record_win
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_win",
		Description: "Record an observed win toward a milestone rung and report whether it promoted",
	}, s.handleRecordWin)

	// get_ladder
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_ladder",
		Description: "Get a ladder with derived per-rung statuses",
	}, s.handleGetLadder)

	// list_ladders
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_ladders",
		Description: "List ladders, optionally filtered by child",
	}, s.handleListLadders)

	// get_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_today",
		Description: "Get a child's block summaries for a date with statuses and instructions",
	}, s.handleGetToday)

	// log_block
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_block",
		Description: "Record minutes or notes against one of a child's blocks for a date",
	}, s.handleLogBlock)

	// set_energy
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_energy",
		Description: "Set a child's energy level for a date and generate the day's session plan",
	}, s.handleSetEnergy)

	// get_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_plan",
		Description: "Get the generated session plan for a child and date",
	}, s.handleGetPlan)

	// get_streak
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streak",
		Description: "Get a child's consecutive-day activity streak",
	}, s.handleGetStreak)
}

// Tool input/output types

type logSessionInput struct {
	ChildID         string   `json:"child_id" jsonschema:"Child ID"`
	StreamID        string   `json:"stream_id" jsonschema:"Stream (reading, writing, math, speech, project)"`
	LadderID        string   `json:"ladder_id" jsonschema:"Ladder ID"`
	TargetRungOrder int      `json:"target_rung_order" jsonschema:"Rung order the session targeted"`
	Result          string   `json:"result" jsonschema:"Outcome: hit, near, or miss"`
	DurationMinutes int      `json:"duration_minutes,omitempty" jsonschema:"Session duration in minutes"`
	Supports        []string `json:"supports,omitempty" jsonschema:"Support tags used during the attempt"`
	Notes           string   `json:"notes,omitempty" jsonschema:"Optional notes"`
	Date            string   `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type logSessionOutput struct {
	ID      string `json:"id"`
	LevelUp bool   `json:"level_up"`
	Message string `json:"message"`
}

type recordWinInput struct {
	ChildID   string `json:"child_id" jsonschema:"Child ID"`
	LadderID  string `json:"ladder_id" jsonschema:"Ladder ID"`
	RungOrder int    `json:"rung_order,omitempty" jsonschema:"Rung order, defaults to the active rung"`
	Date      string `json:"date,omitempty" jsonschema:"Win date (YYYY-MM-DD), defaults to today"`
}

type recordWinOutput struct {
	RungID   string `json:"rung_id"`
	Wins     int    `json:"wins"`
	Promoted bool   `json:"promoted"`
	Message  string `json:"message"`
}

type getLadderInput struct {
	LadderID string `json:"ladder_id" jsonschema:"Ladder ID"`
}

type listLaddersInput struct {
	ChildID string `json:"child_id,omitempty" jsonschema:"Filter by child ID"`
}

type getTodayInput struct {
	ChildID string `json:"child_id" jsonschema:"Child ID"`
	Date    string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type logBlockInput struct {
	ChildID   string `json:"child_id" jsonschema:"Child ID"`
	BlockType string `json:"block_type" jsonschema:"Block type (formation, reading, writing, math, speech, together, movement, project, checklist)"`
	Minutes   int    `json:"minutes,omitempty" jsonschema:"Actual minutes spent"`
	Notes     string `json:"notes,omitempty" jsonschema:"Free-form notes"`
	Date      string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type setEnergyInput struct {
	ChildID string `json:"child_id" jsonschema:"Child ID"`
	Energy  string `json:"energy" jsonschema:"Energy level: normal, low, or overwhelmed"`
	Date    string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type getPlanInput struct {
	ChildID string `json:"child_id" jsonschema:"Child ID"`
	Date    string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type getStreakInput struct {
	ChildID string `json:"child_id" jsonschema:"Child ID"`
}

type streakOutput struct {
	SessionStreak int    `json:"session_streak"`
	DayLogStreak  int    `json:"day_log_streak"`
	Message       string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogSession(ctx context.Context, req *mcp.CallToolRequest, input logSessionInput) (*mcp.CallToolResult, logSessionOutput, error) {
	if !models.IsValidResult(input.Result) {
		return nil, logSessionOutput{}, fmt.Errorf("unknown result: %s", input.Result)
	}

	sess := models.NewSession(input.ChildID, input.StreamID, input.LadderID,
		input.TargetRungOrder, models.Result(input.Result))
	if input.DurationMinutes > 0 {
		sess.WithDuration(input.DurationMinutes * 60)
	}
	if input.Notes != "" {
		sess.WithNotes(input.Notes)
	}
	if len(input.Supports) > 0 {
		sess.WithSupports(input.Supports)
	}
	if input.Date != "" {
		sess.WithDate(input.Date)
	}

	if err := s.repo.AppendSession(sess); err != nil {
		return nil, logSessionOutput{}, fmt.Errorf("failed to log session: %w", err)
	}

	sessions, err := s.repo.ListRungSessions(input.LadderID, input.TargetRungOrder)
	if err != nil {
		return nil, logSessionOutput{}, fmt.Errorf("failed to evaluate level-up: %w", err)
	}
	levelUp := progression.EvaluateLevelUp(sessions, input.LadderID, input.TargetRungOrder)

	msg := fmt.Sprintf("Logged %s session on rung %d", input.Result, input.TargetRungOrder)
	if levelUp {
		msg += " - level up! Three hits in a row."
	}
	return nil, logSessionOutput{ID: sess.ID, LevelUp: levelUp, Message: msg}, nil
}

func (s *Server) handleRecordWin(ctx context.Context, req *mcp.CallToolRequest, input recordWinInput) (*mcp.CallToolResult, recordWinOutput, error) {
	ladder, err := s.repo.GetLadder(input.LadderID)
	if err != nil {
		return nil, recordWinOutput{}, err
	}

	rung, err := s.resolveRung(ladder, input.ChildID, input.RungOrder)
	if err != nil {
		return nil, recordWinOutput{}, err
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	}

	progress, err := s.repo.GetProgress(input.ChildID, ladder.ID, rung.ID)
	if err != nil {
		return nil, recordWinOutput{}, err
	}
	if progress == nil {
		progress = models.NewMilestoneProgress(input.ChildID, ladder.ID, rung.ID)
	}

	progress.Wins = append(progress.Wins, models.Win{Date: date})
	promoted := false
	if progress.Status != models.StatusAchieved &&
		progression.EvaluateMilestonePromotion(progress.Wins, date) {
		progress.Status = models.StatusAchieved
		progress.AchievedAt = date
		promoted = true
	} else if progress.Status == models.StatusLocked {
		progress.Status = models.StatusActive
	}

	if err := s.repo.PutProgress(progress); err != nil {
		return nil, recordWinOutput{}, fmt.Errorf("failed to record win: %w", err)
	}

	msg := fmt.Sprintf("Recorded win on %q (%d total)", rung.Title, len(progress.Wins))
	if promoted {
		msg = fmt.Sprintf("Milestone achieved: %q promoted after %d wins!", rung.Title, len(progress.Wins))
	}
	return nil, recordWinOutput{
		RungID:   rung.ID,
		Wins:     len(progress.Wins),
		Promoted: promoted,
		Message:  msg,
	}, nil
}

func (s *Server) handleGetLadder(ctx context.Context, req *mcp.CallToolRequest, input getLadderInput) (*mcp.CallToolResult, any, error) {
	ladder, err := s.repo.GetLadder(input.LadderID)
	if err != nil {
		return nil, nil, err
	}

	statuses, err := s.ladderStatuses(ladder)
	if err != nil {
		return nil, nil, err
	}

	type rungView struct {
		models.Rung
		Status models.MilestoneStatus `json:"status"`
	}
	var rungs []rungView
	for _, r := range ladder.SortedRungs() {
		rungs = append(rungs, rungView{Rung: r, Status: statuses.ByRungID[r.ID]})
	}

	return nil, map[string]any{
		"id":      ladder.ID,
		"childId": ladder.ChildID,
		"title":   ladder.Title,
		"stream":  ladder.Stream,
		"rungs":   rungs,
	}, nil
}

func (s *Server) handleListLadders(ctx context.Context, req *mcp.CallToolRequest, input listLaddersInput) (*mcp.CallToolResult, any, error) {
	ladders, err := s.repo.ListLadders(input.ChildID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list ladders: %w", err)
	}
	if len(ladders) == 0 {
		return nil, map[string]any{"message": "No ladders found."}, nil
	}
	return nil, ladders, nil
}

func (s *Server) handleGetToday(ctx context.Context, req *mcp.CallToolRequest, input getTodayInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = models.Today()
	}

	child, err := s.repo.GetChild(input.ChildID)
	if err != nil {
		return nil, nil, err
	}
	weekPlan, err := s.repo.WeekPlanFor(date)
	if err != nil {
		return nil, nil, err
	}
	dayLog, err := s.repo.GetDayLog(input.ChildID, date)
	if err != nil {
		return nil, nil, err
	}

	blocks := today.Blocks(weekPlan, child, dayLog)
	return nil, map[string]any{
		"child":  child.Name,
		"date":   date,
		"blocks": blocks,
	}, nil
}

func (s *Server) handleLogBlock(ctx context.Context, req *mcp.CallToolRequest, input logBlockInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidBlockType(input.BlockType) {
		return nil, simpleOutput{}, fmt.Errorf("unknown block type: %s", input.BlockType)
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	}

	dayLog, err := s.repo.GetDayLog(input.ChildID, date)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if dayLog == nil {
		dayLog = models.NewDayLog(input.ChildID, date)
	}

	entry := dayLog.EnsureBlock(models.BlockType(input.BlockType))
	if input.Minutes > 0 {
		entry.ActualMinutes = input.Minutes
	}
	if input.Notes != "" {
		entry.Notes = input.Notes
	}

	if err := s.repo.PutDayLog(dayLog); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save day log: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s block for %s", input.BlockType, date),
	}, nil
}

func (s *Server) handleSetEnergy(ctx context.Context, req *mcp.CallToolRequest, input setEnergyInput) (*mcp.CallToolResult, any, error) {
	if !models.IsValidEnergyLevel(input.Energy) {
		return nil, nil, fmt.Errorf("unknown energy level: %s", input.Energy)
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	}

	targets, err := s.streamTargets(input.ChildID)
	if err != nil {
		return nil, nil, err
	}

	plan := planner.BuildPlan(input.ChildID, date, targets, models.EnergyLevel(input.Energy))
	if err := s.repo.PutDailyPlan(plan); err != nil {
		return nil, nil, fmt.Errorf("failed to save plan: %w", err)
	}

	return nil, plan, nil
}

func (s *Server) handleGetPlan(ctx context.Context, req *mcp.CallToolRequest, input getPlanInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = models.Today()
	}

	plan, err := s.repo.GetDailyPlan(input.ChildID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, map[string]any{"message": "No plan generated for " + date + ". Use set_energy first."}, nil
	}
	return nil, plan, nil
}

func (s *Server) handleGetStreak(ctx context.Context, req *mcp.CallToolRequest, input getStreakInput) (*mcp.CallToolResult, streakOutput, error) {
	todayStr := models.Today()

	sessions, err := s.repo.ListSessions(input.ChildID, 0)
	if err != nil {
		return nil, streakOutput{}, fmt.Errorf("failed to list sessions: %w", err)
	}
	logs, err := s.repo.ListDayLogs(input.ChildID)
	if err != nil {
		return nil, streakOutput{}, fmt.Errorf("failed to list day logs: %w", err)
	}

	sessionStreak := streak.FromSessions(sessions, input.ChildID, todayStr)
	logStreak := streak.FromDayLogs(logs, todayStr)

	return nil, streakOutput{
		SessionStreak: sessionStreak,
		DayLogStreak:  logStreak,
		Message:       fmt.Sprintf("%d-day practice streak, %d-day logging streak", sessionStreak, logStreak),
	}, nil
}

// Helpers

// resolveRung picks the rung for a win: an explicit order if given, else
// the ladder's derived active rung.
func (s *Server) resolveRung(ladder *models.Ladder, childID string, order int) (*models.Rung, error) {
	if order > 0 {
		rung := ladder.RungByOrder(order)
		if rung == nil {
			return nil, fmt.Errorf("no rung with order %d on ladder %s", order, ladder.ID)
		}
		return rung, nil
	}

	statuses, err := s.ladderStatuses(ladder)
	if err != nil {
		return nil, err
	}
	if statuses.ActiveRungID == "" {
		return nil, fmt.Errorf("ladder %s is fully achieved", ladder.ID)
	}
	for i := range ladder.Rungs {
		if ladder.Rungs[i].ID == statuses.ActiveRungID {
			return &ladder.Rungs[i], nil
		}
	}
	return nil, fmt.Errorf("active rung not found on ladder %s", ladder.ID)
}

func (s *Server) ladderStatuses(ladder *models.Ladder) (progression.RungStatuses, error) {
	progress, err := s.repo.ListProgress(ladder.ChildID, ladder.ID)
	if err != nil {
		return progression.RungStatuses{}, fmt.Errorf("failed to list progress: %w", err)
	}
	byRung := make(map[string]*models.MilestoneProgress, len(progress))
	for _, p := range progress {
		byRung[p.RungID] = p
	}
	return progression.DeriveRungStatuses(ladder.Rungs, byRung), nil
}

func (s *Server) streamTargets(childID string) (map[string]planner.StreamTarget, error) {
	ladders, err := s.repo.ListLadders(childID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ladders: %w", err)
	}

	progressByLadder := make(map[string][]*models.MilestoneProgress, len(ladders))
	for _, l := range ladders {
		progress, err := s.repo.ListProgress(childID, l.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list progress: %w", err)
		}
		progressByLadder[l.ID] = progress
	}

	return planner.Targets(ladders, progressByLadder), nil
}
