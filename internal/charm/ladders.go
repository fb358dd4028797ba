// ABOUTME: Ladder and milestone progress operations for Charm KV storage.
// ABOUTME: Progress keys encode the (child, ladder, rung) triple.
package charm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hearthlog/hearth/internal/models"
)

// CreateLadder stores a new ladder with its rungs.
func (c *Client) CreateLadder(l *models.Ladder) error {
	data, err := marshalJSON(l)
	if err != nil {
		return fmt.Errorf("marshal ladder: %w", err)
	}
	return c.set(LadderPrefix+l.ID, data)
}

// GetLadder retrieves a ladder by ID.
func (c *Client) GetLadder(id string) (*models.Ladder, error) {
	data, err := c.get(LadderPrefix + id)
	if err != nil {
		return nil, fmt.Errorf("get ladder: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("ladder not found: %s", id)
	}
	return unmarshalJSON[models.Ladder](data)
}

// ListLadders retrieves ladders, optionally filtered by child.
func (c *Client) ListLadders(childID string) ([]*models.Ladder, error) {
	allData, err := c.listByPrefix(LadderPrefix)
	if err != nil {
		return nil, fmt.Errorf("list ladders: %w", err)
	}

	var ladders []*models.Ladder
	for _, data := range allData {
		l, err := unmarshalJSON[models.Ladder](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if childID != "" && l.ChildID != childID {
			continue
		}
		ladders = append(ladders, l)
	}

	sort.Slice(ladders, func(i, j int) bool {
		if ladders[i].Stream != ladders[j].Stream {
			return ladders[i].Stream < ladders[j].Stream
		}
		return ladders[i].Title < ladders[j].Title
	})
	return ladders, nil
}

// UpdateLadder overwrites a ladder's title and rungs (rung edits).
func (c *Client) UpdateLadder(l *models.Ladder) error {
	existing, err := c.get(LadderPrefix + l.ID)
	if err != nil {
		return fmt.Errorf("update ladder: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("ladder not found: %s", l.ID)
	}

	data, err := marshalJSON(l)
	if err != nil {
		return fmt.Errorf("marshal ladder: %w", err)
	}
	return c.set(LadderPrefix+l.ID, data)
}

// DeleteLadder removes a ladder and its progress records.
func (c *Client) DeleteLadder(id string) error {
	existing, err := c.get(LadderPrefix + id)
	if err != nil {
		return fmt.Errorf("delete ladder: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("ladder not found: %s", id)
	}

	progress, err := c.listByPrefix(ProgressPrefix)
	if err != nil {
		return fmt.Errorf("delete ladder progress: %w", err)
	}
	for key := range progress {
		if strings.Contains(key, ":"+id+":") {
			if err := c.delete(key); err != nil {
				return fmt.Errorf("delete ladder progress: %w", err)
			}
		}
	}

	return c.delete(LadderPrefix + id)
}

// progressKey builds the key for a (child, ladder, rung) progress record.
// IDs never contain colons, so the triple splits unambiguously.
func progressKey(childID, ladderID, rungID string) string {
	return ProgressPrefix + childID + ":" + ladderID + ":" + rungID
}

// GetProgress retrieves the progress record for one rung, or nil if the
// record has not been created yet.
func (c *Client) GetProgress(childID, ladderID, rungID string) (*models.MilestoneProgress, error) {
	data, err := c.get(progressKey(childID, ladderID, rungID))
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return unmarshalJSON[models.MilestoneProgress](data)
}

// ListProgress retrieves all progress records for a (child, ladder) pair.
func (c *Client) ListProgress(childID, ladderID string) ([]*models.MilestoneProgress, error) {
	allData, err := c.listByPrefix(ProgressPrefix + childID + ":" + ladderID + ":")
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	var records []*models.MilestoneProgress
	for _, data := range allData {
		p, err := unmarshalJSON[models.MilestoneProgress](data)
		if err != nil {
			continue // Skip invalid entries
		}
		records = append(records, p)
	}
	return records, nil
}

// PutProgress upserts a progress record; the (child, ladder, rung) triple
// is the document identity.
func (c *Client) PutProgress(p *models.MilestoneProgress) error {
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	return c.set(progressKey(p.ChildID, p.LadderID, p.RungID), data)
}
