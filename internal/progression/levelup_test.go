// ABOUTME: Tests for level-up evaluation over session streams.
// ABOUTME: Covers window size, non-contiguous hits, and cross-rung filtering.
package progression

import (
	"testing"
	"time"

	"github.com/hearthlog/hearth/internal/models"
)

func sessionAt(ladderID string, order int, result models.Result, minutesAgo int) *models.Session {
	return &models.Session{
		ID:              "s",
		ChildID:         "miles",
		Date:            "2026-02-16",
		StreamID:        "reading",
		LadderID:        ladderID,
		TargetRungOrder: order,
		Result:          result,
		CreatedAt:       time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC).Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func TestEvaluateLevelUpThreeRecentHits(t *testing.T) {
	sessions := []*models.Session{
		sessionAt("ladder-1", 2, models.ResultHit, 30),
		sessionAt("ladder-1", 2, models.ResultHit, 20),
		sessionAt("ladder-1", 2, models.ResultHit, 10),
	}

	if !EvaluateLevelUp(sessions, "ladder-1", 2) {
		t.Error("expected level-up with three recent hits")
	}
}

func TestEvaluateLevelUpTooFewSessions(t *testing.T) {
	sessions := []*models.Session{
		sessionAt("ladder-1", 2, models.ResultHit, 20),
		sessionAt("ladder-1", 2, models.ResultHit, 10),
	}

	if EvaluateLevelUp(sessions, "ladder-1", 2) {
		t.Error("two sessions must not trigger level-up")
	}
	if EvaluateLevelUp(nil, "ladder-1", 2) {
		t.Error("empty stream must not trigger level-up")
	}
}

func TestEvaluateLevelUpRecentMissBlocks(t *testing.T) {
	// Three hits exist, but the most recent three include a miss.
	sessions := []*models.Session{
		sessionAt("ladder-1", 2, models.ResultHit, 40),
		sessionAt("ladder-1", 2, models.ResultHit, 30),
		sessionAt("ladder-1", 2, models.ResultHit, 20),
		sessionAt("ladder-1", 2, models.ResultMiss, 10),
	}

	if EvaluateLevelUp(sessions, "ladder-1", 2) {
		t.Error("a miss inside the recent window must block level-up")
	}
}

func TestEvaluateLevelUpNearBlocks(t *testing.T) {
	sessions := []*models.Session{
		sessionAt("ladder-1", 2, models.ResultHit, 30),
		sessionAt("ladder-1", 2, models.ResultNear, 20),
		sessionAt("ladder-1", 2, models.ResultHit, 10),
	}

	if EvaluateLevelUp(sessions, "ladder-1", 2) {
		t.Error("a near inside the recent window must block level-up")
	}
}

func TestEvaluateLevelUpFiltersOtherRungs(t *testing.T) {
	sessions := []*models.Session{
		sessionAt("ladder-1", 1, models.ResultHit, 40),
		sessionAt("ladder-1", 2, models.ResultHit, 30),
		sessionAt("ladder-1", 2, models.ResultHit, 20),
		sessionAt("ladder-2", 2, models.ResultHit, 10),
	}

	// Only two sessions match (ladder-1, rung 2).
	if EvaluateLevelUp(sessions, "ladder-1", 2) {
		t.Error("sessions from other ladders/rungs must not count")
	}
}

func TestEvaluateLevelUpOrdersByTimestampNotInput(t *testing.T) {
	// Oldest-first input with a stale miss outside the window.
	sessions := []*models.Session{
		sessionAt("ladder-1", 2, models.ResultMiss, 60),
		sessionAt("ladder-1", 2, models.ResultHit, 10),
		sessionAt("ladder-1", 2, models.ResultHit, 30),
		sessionAt("ladder-1", 2, models.ResultHit, 20),
	}

	if !EvaluateLevelUp(sessions, "ladder-1", 2) {
		t.Error("old miss outside the most-recent three must not block")
	}
}
