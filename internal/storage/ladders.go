// ABOUTME: Ladder and milestone progress operations for SQLite storage.
// ABOUTME: Rung lists and win lists are stored as JSON columns.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hearthlog/hearth/internal/models"
)

// CreateLadder stores a new ladder with its rungs.
func (d *DB) CreateLadder(l *models.Ladder) error {
	rungs, err := json.Marshal(l.Rungs)
	if err != nil {
		return fmt.Errorf("create ladder: encode rungs: %w", err)
	}

	_, err = d.db.Exec(
		`INSERT INTO ladders (id, child_id, title, stream, rungs) VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.ChildID, l.Title, l.Stream, string(rungs))
	if err != nil {
		return fmt.Errorf("create ladder: %w", err)
	}
	return nil
}

// GetLadder retrieves a ladder by ID.
func (d *DB) GetLadder(id string) (*models.Ladder, error) {
	row := d.db.QueryRow(
		`SELECT id, child_id, title, stream, rungs FROM ladders WHERE id = ?`, id)
	l, err := scanLadder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ladder not found: %s", id)
		}
		return nil, fmt.Errorf("get ladder: %w", err)
	}
	return l, nil
}

// ListLadders retrieves ladders, optionally filtered by child.
func (d *DB) ListLadders(childID string) ([]*models.Ladder, error) {
	query := `SELECT id, child_id, title, stream, rungs FROM ladders ORDER BY stream, title`
	var args []any
	if childID != "" {
		query = `SELECT id, child_id, title, stream, rungs FROM ladders WHERE child_id = ? ORDER BY stream, title`
		args = append(args, childID)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ladders: %w", err)
	}
	defer rows.Close()

	var ladders []*models.Ladder
	for rows.Next() {
		l, err := scanLadder(rows)
		if err != nil {
			return nil, fmt.Errorf("list ladders: %w", err)
		}
		ladders = append(ladders, l)
	}
	return ladders, rows.Err()
}

// UpdateLadder overwrites a ladder's title and rungs (rung edits).
func (d *DB) UpdateLadder(l *models.Ladder) error {
	rungs, err := json.Marshal(l.Rungs)
	if err != nil {
		return fmt.Errorf("update ladder: encode rungs: %w", err)
	}

	result, err := d.db.Exec(
		`UPDATE ladders SET title = ?, stream = ?, rungs = ? WHERE id = ?`,
		l.Title, l.Stream, string(rungs), l.ID)
	if err != nil {
		return fmt.Errorf("update ladder: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update ladder: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("ladder not found: %s", l.ID)
	}
	return nil
}

// DeleteLadder removes a ladder and its progress records.
func (d *DB) DeleteLadder(id string) error {
	if _, err := d.db.Exec(`DELETE FROM milestone_progress WHERE ladder_id = ?`, id); err != nil {
		return fmt.Errorf("delete ladder progress: %w", err)
	}

	result, err := d.db.Exec(`DELETE FROM ladders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete ladder: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete ladder: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("ladder not found: %s", id)
	}
	return nil
}

func scanLadder(row rowScanner) (*models.Ladder, error) {
	var l models.Ladder
	var rungs string

	if err := row.Scan(&l.ID, &l.ChildID, &l.Title, &l.Stream, &rungs); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(rungs), &l.Rungs); err != nil {
		return nil, fmt.Errorf("decode rungs: %w", err)
	}
	return &l, nil
}

// GetProgress retrieves the progress record for one rung, or nil if the
// record has not been created yet.
func (d *DB) GetProgress(childID, ladderID, rungID string) (*models.MilestoneProgress, error) {
	row := d.db.QueryRow(
		`SELECT child_id, ladder_id, rung_id, status, achieved_at, wins
		 FROM milestone_progress
		 WHERE child_id = ? AND ladder_id = ? AND rung_id = ?`,
		childID, ladderID, rungID)

	p, err := scanProgress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

// ListProgress retrieves all progress records for a (child, ladder) pair.
func (d *DB) ListProgress(childID, ladderID string) ([]*models.MilestoneProgress, error) {
	rows, err := d.db.Query(
		`SELECT child_id, ladder_id, rung_id, status, achieved_at, wins
		 FROM milestone_progress
		 WHERE child_id = ? AND ladder_id = ?`,
		childID, ladderID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var records []*models.MilestoneProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("list progress: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// PutProgress upserts a progress record; the (child, ladder, rung) triple
// is the document identity.
func (d *DB) PutProgress(p *models.MilestoneProgress) error {
	wins, err := json.Marshal(p.Wins)
	if err != nil {
		return fmt.Errorf("put progress: encode wins: %w", err)
	}

	_, err = d.db.Exec(
		`INSERT INTO milestone_progress (child_id, ladder_id, rung_id, status, achieved_at, wins)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (child_id, ladder_id, rung_id)
		 DO UPDATE SET status = excluded.status, achieved_at = excluded.achieved_at, wins = excluded.wins`,
		p.ChildID, p.LadderID, p.RungID, string(p.Status), p.AchievedAt, string(wins))
	if err != nil {
		return fmt.Errorf("put progress: %w", err)
	}
	return nil
}

func scanProgress(row rowScanner) (*models.MilestoneProgress, error) {
	var p models.MilestoneProgress
	var status string
	var achievedAt sql.NullString
	var wins sql.NullString

	if err := row.Scan(&p.ChildID, &p.LadderID, &p.RungID, &status, &achievedAt, &wins); err != nil {
		return nil, err
	}

	p.Status = models.MilestoneStatus(status)
	if achievedAt.Valid {
		p.AchievedAt = achievedAt.String
	}
	if wins.Valid && wins.String != "" && wins.String != "null" {
		if err := json.Unmarshal([]byte(wins.String), &p.Wins); err != nil {
			return nil, fmt.Errorf("decode wins: %w", err)
		}
	}
	return &p, nil
}
