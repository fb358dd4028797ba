// ABOUTME: Day-log operations for Charm KV storage, including legacy-key
// ABOUTME: fallback reads and the canonical-key migration.
package charm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/storage"
)

// GetDayLog retrieves a child's day log for a date, trying each legacy key
// format in turn. Returns (nil, nil) when no log exists for the day.
func (c *Client) GetDayLog(childID, date string) (*models.DayLog, error) {
	for _, key := range storage.DayLogLocators(childID, date) {
		data, err := c.get(DayLogPrefix + key)
		if err != nil {
			return nil, fmt.Errorf("get day log: %w", err)
		}
		if data == nil {
			continue
		}

		log, err := unmarshalJSON[models.DayLog](data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal day log %s: %w", key, err)
		}
		if log.Date == "" {
			log.Date = date
		}
		if log.ChildID == "" {
			log.ChildID = childID
		}
		return log, nil
	}
	return nil, nil
}

// PutDayLog stores a day log under the canonical key, overwriting any
// existing document there.
func (c *Client) PutDayLog(l *models.DayLog) error {
	data, err := marshalJSON(l)
	if err != nil {
		return fmt.Errorf("marshal day log: %w", err)
	}
	return c.set(DayLogPrefix+storage.DayLogKey(l.ChildID, l.Date), data)
}

// ListDayLogs retrieves a child's day logs, most recent date first. Legacy
// bare-date documents are included because they predate multi-child support.
func (c *Client) ListDayLogs(childID string) ([]*models.DayLog, error) {
	allData, err := c.listByPrefix(DayLogPrefix)
	if err != nil {
		return nil, fmt.Errorf("list day logs: %w", err)
	}

	var logs []*models.DayLog
	for key, data := range allData {
		docKey := strings.TrimPrefix(key, DayLogPrefix)
		owner := storage.ChildFromDayLogKey(docKey)
		if owner != "" && owner != childID {
			continue
		}

		log, err := unmarshalJSON[models.DayLog](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if owner == "" && log.ChildID != "" && log.ChildID != childID {
			continue
		}
		if log.Date == "" {
			log.Date = storage.DateFromDayLogKey(docKey)
		}
		if log.ChildID == "" {
			log.ChildID = childID
		}
		logs = append(logs, log)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})
	return logs, nil
}

// MigrateDayLogKeys rewrites legacy-keyed day-log documents under the
// canonical key form. Documents that would collide with an existing
// canonical document are left alone; the canonical copy wins on reads.
func (c *Client) MigrateDayLogKeys() (int, error) {
	allData, err := c.listByPrefix(DayLogPrefix)
	if err != nil {
		return 0, fmt.Errorf("migrate day log keys: %w", err)
	}

	migrated := 0
	for key, data := range allData {
		docKey := strings.TrimPrefix(key, DayLogPrefix)

		childID := storage.ChildFromDayLogKey(docKey)
		if childID == "" {
			log, err := unmarshalJSON[models.DayLog](data)
			if err != nil {
				continue
			}
			childID = log.ChildID
		}
		if childID == "" {
			continue // bare-date document with no owner; nothing to rekey to
		}

		date := storage.DateFromDayLogKey(docKey)
		canonical := storage.DayLogKey(childID, date)
		if docKey == canonical {
			continue
		}
		if _, exists := allData[DayLogPrefix+canonical]; exists {
			continue
		}

		log, err := unmarshalJSON[models.DayLog](data)
		if err != nil {
			continue
		}
		log.ChildID = childID
		log.Date = date

		rewritten, err := marshalJSON(log)
		if err != nil {
			return migrated, fmt.Errorf("migrate day log keys: %w", err)
		}
		if err := c.set(DayLogPrefix+canonical, rewritten); err != nil {
			return migrated, fmt.Errorf("migrate day log keys: %w", err)
		}
		if err := c.delete(key); err != nil {
			return migrated, fmt.Errorf("migrate day log keys: %w", err)
		}
		migrated++
	}
	return migrated, nil
}
