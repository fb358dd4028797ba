// ABOUTME: Session append and query operations for SQLite storage.
// ABOUTME: Sessions are immutable events; there is no update or delete path.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hearthlog/hearth/internal/models"
)

// AppendSession stores a new practice session event.
func (d *DB) AppendSession(s *models.Session) error {
	var supports sql.NullString
	if len(s.Supports) > 0 {
		data, err := json.Marshal(s.Supports)
		if err != nil {
			return fmt.Errorf("append session: encode supports: %w", err)
		}
		supports = sql.NullString{String: string(data), Valid: true}
	}

	_, err := d.db.Exec(
		`INSERT INTO sessions (id, child_id, date, stream_id, ladder_id, target_rung_order,
			result, duration_seconds, supports, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.ChildID, s.Date, s.StreamID, s.LadderID, s.TargetRungOrder,
		string(s.Result), s.DurationSeconds, supports, s.Notes,
		s.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

// ListSessions retrieves a child's sessions, most recent first.
func (d *DB) ListSessions(childID string, limit int) ([]*models.Session, error) {
	query := `SELECT id, child_id, date, stream_id, ladder_id, target_rung_order,
			result, duration_seconds, supports, notes, created_at
		FROM sessions WHERE child_id = ? ORDER BY created_at DESC`
	args := []any{childID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ListRungSessions retrieves every session targeting a (ladder, rung order)
// pair, most recent first. This is the level-up evaluator's input.
func (d *DB) ListRungSessions(ladderID string, targetRungOrder int) ([]*models.Session, error) {
	rows, err := d.db.Query(
		`SELECT id, child_id, date, stream_id, ladder_id, target_rung_order,
			result, duration_seconds, supports, notes, created_at
		 FROM sessions
		 WHERE ladder_id = ? AND target_rung_order = ?
		 ORDER BY created_at DESC`,
		ladderID, targetRungOrder)
	if err != nil {
		return nil, fmt.Errorf("list rung sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]*models.Session, error) {
	var sessions []*models.Session
	for rows.Next() {
		var s models.Session
		var result, createdAt string
		var duration sql.NullInt64
		var supports, notes sql.NullString

		err := rows.Scan(&s.ID, &s.ChildID, &s.Date, &s.StreamID, &s.LadderID,
			&s.TargetRungOrder, &result, &duration, &supports, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		s.Result = models.Result(result)
		if duration.Valid {
			v := int(duration.Int64)
			s.DurationSeconds = &v
		}
		if supports.Valid && supports.String != "" {
			if err := json.Unmarshal([]byte(supports.String), &s.Supports); err != nil {
				return nil, fmt.Errorf("decode supports: %w", err)
			}
		}
		if notes.Valid {
			s.Notes = &notes.String
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}
