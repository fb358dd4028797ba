// ABOUTME: MCP resource implementations for hearth progression tracking.
// ABOUTME: Provides hearth://today, hearth://ladders, and hearth://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/streak"
	"github.com/hearthlog/hearth/internal/today"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// hearth://today - Every child's block summaries for today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "hearth://today",
		Name:        "Today's Blocks",
		Description: "Block statuses and instructions for every child today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// hearth://ladders - All ladders with derived rung statuses
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "hearth://ladders",
		Name:        "Skill Ladders",
		Description: "Every ladder with per-rung achievement statuses",
		MIMEType:    "application/json",
	}, s.handleLaddersResource)

	// hearth://summary - Per-child dashboard with streaks and active rungs
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "hearth://summary",
		Name:        "Family Summary Dashboard",
		Description: "Streaks, active rungs, and recent sessions per child",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	date := models.Today()

	children, err := s.repo.ListChildren()
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	weekPlan, err := s.repo.WeekPlanFor(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get week plan: %w", err)
	}

	byChild := make(map[string]any, len(children))
	for _, c := range children {
		dayLog, err := s.repo.GetDayLog(c.ID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to get day log: %w", err)
		}
		byChild[c.Name] = today.Blocks(weekPlan, c, dayLog)
	}

	result := map[string]any{
		"date":     date,
		"children": byChild,
	}
	return marshalResource("hearth://today", result)
}

func (s *Server) handleLaddersResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	ladders, err := s.repo.ListLadders("")
	if err != nil {
		return nil, fmt.Errorf("failed to list ladders: %w", err)
	}

	var views []map[string]any
	for _, l := range ladders {
		statuses, err := s.ladderStatuses(l)
		if err != nil {
			return nil, err
		}

		var rungs []map[string]any
		for _, r := range l.SortedRungs() {
			rungs = append(rungs, map[string]any{
				"order":  r.Order,
				"title":  r.Title,
				"status": statuses.ByRungID[r.ID],
			})
		}
		views = append(views, map[string]any{
			"id":      l.ID,
			"childId": l.ChildID,
			"title":   l.Title,
			"stream":  l.Stream,
			"rungs":   rungs,
		})
	}

	return marshalResource("hearth://ladders", views)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	date := models.Today()

	children, err := s.repo.ListChildren()
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	summaries := make(map[string]any, len(children))
	for _, c := range children {
		sessions, err := s.repo.ListSessions(c.ID, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions: %w", err)
		}
		logs, err := s.repo.ListDayLogs(c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list day logs: %w", err)
		}

		active := make(map[string]string)
		ladders, err := s.repo.ListLadders(c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list ladders: %w", err)
		}
		for _, l := range ladders {
			statuses, err := s.ladderStatuses(l)
			if err != nil {
				return nil, err
			}
			for _, r := range l.Rungs {
				if r.ID == statuses.ActiveRungID {
					active[l.Stream] = r.Title
				}
			}
		}

		recent := sessions
		if len(recent) > 5 {
			recent = recent[:5]
		}

		summaries[c.Name] = map[string]any{
			"session_streak":  streak.FromSessions(sessions, c.ID, date),
			"day_log_streak":  streak.FromDayLogs(logs, date),
			"active_rungs":    active,
			"recent_sessions": recent,
		}
	}

	result := map[string]any{
		"generated_at": time.Now().Format(time.RFC3339),
		"children":     summaries,
	}
	return marshalResource("hearth://summary", result)
}

func marshalResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
