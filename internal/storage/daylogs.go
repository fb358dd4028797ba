// ABOUTME: Day-log operations for SQLite storage, including legacy-key
// ABOUTME: fallback reads and the canonical-key migration.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hearthlog/hearth/internal/models"
)

// GetDayLog retrieves a child's day log for a date, trying each legacy key
// format in turn. Returns (nil, nil) when no log exists for the day.
func (d *DB) GetDayLog(childID, date string) (*models.DayLog, error) {
	for _, key := range DayLogLocators(childID, date) {
		var data string
		err := d.db.QueryRow(`SELECT data FROM day_logs WHERE id = ?`, key).Scan(&data)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get day log: %w", err)
		}

		log, err := decodeDayLog(key, data)
		if err != nil {
			return nil, err
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
func (d *DB) PutDayLog(l *models.DayLog) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("put day log: encode: %w", err)
	}

	_, err = d.db.Exec(
		`INSERT INTO day_logs (id, child_id, date, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET child_id = excluded.child_id,
			date = excluded.date, data = excluded.data`,
		DayLogKey(l.ChildID, l.Date), l.ChildID, l.Date, string(data))
	if err != nil {
		return fmt.Errorf("put day log: %w", err)
	}
	return nil
}

// ListDayLogs retrieves a child's day logs, most recent date first. Legacy
// bare-date documents are included because they predate multi-child support.
func (d *DB) ListDayLogs(childID string) ([]*models.DayLog, error) {
	rows, err := d.db.Query(
		`SELECT id, data FROM day_logs
		 WHERE child_id = ? OR child_id IS NULL OR child_id = ''
		 ORDER BY date DESC`,
		childID)
	if err != nil {
		return nil, fmt.Errorf("list day logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.DayLog
	for rows.Next() {
		var key, data string
		if err := rows.Scan(&key, &data); err != nil {
			return nil, fmt.Errorf("list day logs: %w", err)
		}
		log, err := decodeDayLog(key, data)
		if err != nil {
			return nil, err
		}
		if log.ChildID == "" {
			log.ChildID = childID
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// MigrateDayLogKeys rewrites legacy-keyed day-log rows under the canonical
// key form. Rows that would collide with an existing canonical document are
// left alone; the canonical copy wins on reads anyway.
func (d *DB) MigrateDayLogKeys() (int, error) {
	rows, err := d.db.Query(`SELECT id, child_id, data FROM day_logs`)
	if err != nil {
		return 0, fmt.Errorf("migrate day log keys: %w", err)
	}

	type rewrite struct {
		oldKey, newKey string
		childID, date  string
	}
	var rewrites []rewrite
	for rows.Next() {
		var key, data string
		var childCol sql.NullString
		if err := rows.Scan(&key, &childCol, &data); err != nil {
			rows.Close()
			return 0, fmt.Errorf("migrate day log keys: %w", err)
		}

		childID := ChildFromDayLogKey(key)
		if childID == "" {
			childID = childCol.String
		}
		if childID == "" {
			var log models.DayLog
			if err := json.Unmarshal([]byte(data), &log); err == nil {
				childID = log.ChildID
			}
		}
		if childID == "" {
			continue // bare-date document with no owner; nothing to rekey to
		}

		date := DateFromDayLogKey(key)
		canonical := DayLogKey(childID, date)
		if key == canonical {
			continue
		}
		rewrites = append(rewrites, rewrite{oldKey: key, newKey: canonical, childID: childID, date: date})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("migrate day log keys: %w", err)
	}
	rows.Close()

	migrated := 0
	for _, r := range rewrites {
		result, err := d.db.Exec(
			`UPDATE day_logs SET id = ?, child_id = ?, date = ?
			 WHERE id = ? AND NOT EXISTS (SELECT 1 FROM day_logs WHERE id = ?)`,
			r.newKey, r.childID, r.date, r.oldKey, r.newKey)
		if err != nil {
			return migrated, fmt.Errorf("migrate day log keys: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return migrated, fmt.Errorf("migrate day log keys: %w", err)
		}
		migrated += int(affected)
	}
	return migrated, nil
}

func decodeDayLog(key, data string) (*models.DayLog, error) {
	var log models.DayLog
	if err := json.Unmarshal([]byte(data), &log); err != nil {
		return nil, fmt.Errorf("decode day log %s: %w", key, err)
	}
	if log.Date == "" {
		log.Date = DateFromDayLogKey(key)
	}
	if log.ChildID == "" {
		log.ChildID = ChildFromDayLogKey(key)
	}
	return &log, nil
}
