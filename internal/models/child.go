// ABOUTME: Child model and the block-type vocabulary for daily schedules.
// ABOUTME: Defines the nine default block types and per-child overrides.
package models

import (
	"strings"
	"time"
)

// BlockType identifies one scheduled block in a school day.
type BlockType string

const (
	BlockFormation BlockType = "formation"
	BlockReading   BlockType = "reading"
	BlockWriting   BlockType = "writing"
	BlockMath      BlockType = "math"
	BlockSpeech    BlockType = "speech"
	BlockTogether  BlockType = "together"
	BlockMovement  BlockType = "movement"
	BlockProject   BlockType = "project"
	BlockChecklist BlockType = "checklist"
)

// DefaultBlockOrder is the full block sequence used when a child has no
// override list configured.
var DefaultBlockOrder = []BlockType{
	BlockFormation, BlockReading, BlockWriting, BlockMath, BlockSpeech,
	BlockTogether, BlockMovement, BlockProject, BlockChecklist,
}

// BlockTitles maps block types to their display titles.
var BlockTitles = map[BlockType]string{
	BlockFormation: "Formation",
	BlockReading:   "Reading",
	BlockWriting:   "Writing & Spelling",
	BlockMath:      "Math",
	BlockSpeech:    "Speech",
	BlockTogether:  "Together Time",
	BlockMovement:  "Movement",
	BlockProject:   "Dad-Lab Project",
	BlockChecklist: "Checklist",
}

// IsValidBlockType checks if a string is a known block type.
func IsValidBlockType(s string) bool {
	_, ok := BlockTitles[BlockType(s)]
	return ok
}

// Child represents one learner in the family.
type Child struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	BlockOrder []BlockType `json:"blockOrder,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// NewChild creates a Child with an ID slugged from the name.
func NewChild(name string) *Child {
	return &Child{
		ID:        SlugID(name),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// Blocks returns the child's block sequence: the override list if set,
// else the full default order.
func (c *Child) Blocks() []BlockType {
	if c != nil && len(c.BlockOrder) > 0 {
		return c.BlockOrder
	}
	return DefaultBlockOrder
}

// SlugID lowercases a name and replaces spaces for use as a document ID.
// Child IDs appear inside composite day-log keys, so they stay short and
// underscore-free.
func SlugID(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
