// ABOUTME: Ladder, Rung, and MilestoneProgress models for skill tracking.
// ABOUTME: A ladder is an ordered run of rungs for one child and stream.
package models

import (
	"sort"

	"github.com/google/uuid"
)

// Stream identifiers for the learning domains a ladder can belong to.
const (
	StreamReading = "reading"
	StreamWriting = "writing"
	StreamMath    = "math"
	StreamSpeech  = "speech"
	StreamProject = "project"
)

// Ladder is an ordered sequence of skill milestones for one child and one
// learning stream.
type Ladder struct {
	ID      string `json:"id"`
	ChildID string `json:"childId"`
	Title   string `json:"title"`
	Stream  string `json:"stream"`
	Rungs   []Rung `json:"rungs"`
}

// Rung is a single milestone within a ladder. Order is unique within the
// ladder and defines the sequence.
type Rung struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Order         int      `json:"order"`
	ProofExamples []string `json:"proofExamples,omitempty"`
}

// NewLadder creates a Ladder with a generated UUID.
func NewLadder(childID, title, stream string) *Ladder {
	return &Ladder{
		ID:      uuid.New().String(),
		ChildID: childID,
		Title:   title,
		Stream:  stream,
	}
}

// NewRung creates a Rung with a generated UUID at the given order.
func NewRung(title string, order int) Rung {
	return Rung{
		ID:    uuid.New().String(),
		Title: title,
		Order: order,
	}
}

// SortedRungs returns the ladder's rungs sorted ascending by order.
func (l *Ladder) SortedRungs() []Rung {
	rungs := make([]Rung, len(l.Rungs))
	copy(rungs, l.Rungs)
	sort.Slice(rungs, func(i, j int) bool {
		return rungs[i].Order < rungs[j].Order
	})
	return rungs
}

// RungByOrder returns the rung with the given order, or nil if absent.
func (l *Ladder) RungByOrder(order int) *Rung {
	for i := range l.Rungs {
		if l.Rungs[i].Order == order {
			return &l.Rungs[i]
		}
	}
	return nil
}

// MilestoneStatus is a rung's position in the progression lifecycle.
type MilestoneStatus string

const (
	StatusLocked   MilestoneStatus = "locked"
	StatusActive   MilestoneStatus = "active"
	StatusAchieved MilestoneStatus = "achieved"
)

// Win records one observed success toward a rung's milestone.
type Win struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// MilestoneProgress is the per-(child, ladder, rung) achievement record.
// Created lazily; a missing record means the rung is locked.
type MilestoneProgress struct {
	ChildID    string          `json:"childId"`
	LadderID   string          `json:"ladderId"`
	RungID     string          `json:"rungId"`
	Status     MilestoneStatus `json:"status"`
	AchievedAt string          `json:"achievedAt,omitempty"`
	Wins       []Win           `json:"wins,omitempty"`
}

// NewMilestoneProgress creates a progress record in the locked state.
func NewMilestoneProgress(childID, ladderID, rungID string) *MilestoneProgress {
	return &MilestoneProgress{
		ChildID:  childID,
		LadderID: ladderID,
		RungID:   rungID,
		Status:   StatusLocked,
	}
}
