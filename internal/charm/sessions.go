// ABOUTME: Session append and query operations for Charm KV storage.
// ABOUTME: Sessions sort client-side by creation time, most recent first.
package charm

import (
	"fmt"
	"sort"

	"github.com/hearthlog/hearth/internal/models"
)

// AppendSession stores a new practice session event.
func (c *Client) AppendSession(s *models.Session) error {
	data, err := marshalJSON(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return c.set(SessionPrefix+s.ID, data)
}

// ListSessions retrieves a child's sessions, most recent first.
func (c *Client) ListSessions(childID string, limit int) ([]*models.Session, error) {
	sessions, err := c.filterSessions(func(s *models.Session) bool {
		return s.ChildID == childID
	})
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// ListRungSessions retrieves every session targeting a (ladder, rung order)
// pair, most recent first. This is the level-up evaluator's input.
func (c *Client) ListRungSessions(ladderID string, targetRungOrder int) ([]*models.Session, error) {
	return c.filterSessions(func(s *models.Session) bool {
		return s.LadderID == ladderID && s.TargetRungOrder == targetRungOrder
	})
}

func (c *Client) filterSessions(keep func(*models.Session) bool) ([]*models.Session, error) {
	allData, err := c.listByPrefix(SessionPrefix)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var sessions []*models.Session
	for _, data := range allData {
		s, err := unmarshalJSON[models.Session](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if keep(s) {
			sessions = append(sessions, s)
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}
