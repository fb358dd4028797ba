// ABOUTME: Session model for logged practice attempts.
// ABOUTME: Sessions are append-only events and never mutated after creation.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a single practice attempt.
type Result string

const (
	ResultHit  Result = "hit"
	ResultNear Result = "near"
	ResultMiss Result = "miss"
)

// IsValidResult checks if a string is a known session result.
func IsValidResult(s string) bool {
	switch Result(s) {
	case ResultHit, ResultNear, ResultMiss:
		return true
	}
	return false
}

// Session is one immutable practice-attempt event against a specific rung.
type Session struct {
	ID              string    `json:"id"`
	ChildID         string    `json:"childId"`
	Date            string    `json:"date"` // YYYY-MM-DD
	StreamID        string    `json:"streamId"`
	LadderID        string    `json:"ladderId"`
	TargetRungOrder int       `json:"targetRungOrder"`
	Result          Result    `json:"result"`
	DurationSeconds *int      `json:"durationSeconds,omitempty"`
	Supports        []string  `json:"supports,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewSession creates a Session dated today with generated UUID and timestamp.
func NewSession(childID, streamID, ladderID string, targetRungOrder int, result Result) *Session {
	now := time.Now()
	return &Session{
		ID:              uuid.New().String(),
		ChildID:         childID,
		Date:            now.Format(DateLayout),
		StreamID:        streamID,
		LadderID:        ladderID,
		TargetRungOrder: targetRungOrder,
		Result:          result,
		CreatedAt:       now,
	}
}

// WithDuration sets the attempt duration in seconds.
func (s *Session) WithDuration(seconds int) *Session {
	s.DurationSeconds = &seconds
	return s
}

// WithNotes sets notes on the session.
func (s *Session) WithNotes(notes string) *Session {
	s.Notes = &notes
	return s
}

// WithSupports sets the support tags used during the attempt.
func (s *Session) WithSupports(tags []string) *Session {
	s.Supports = tags
	return s
}

// WithDate sets a custom calendar date (YYYY-MM-DD).
func (s *Session) WithDate(date string) *Session {
	s.Date = date
	return s
}

// DateLayout is the canonical calendar-date format used across all records.
// Zero-padded, so lexicographic order matches chronological order.
const DateLayout = "2006-01-02"

// Today returns the current date in canonical form.
func Today() string {
	return time.Now().Format(DateLayout)
}
