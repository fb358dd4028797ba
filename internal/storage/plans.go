// ABOUTME: Week plan and daily plan operations for SQLite storage.
// ABOUTME: Plans are whole-document JSON rows keyed by date.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hearthlog/hearth/internal/models"
)

// PutWeekPlan stores a week plan, overwriting any plan for the same start
// date.
func (d *DB) PutWeekPlan(w *models.WeekPlan) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("put week plan: encode: %w", err)
	}

	_, err = d.db.Exec(
		`INSERT INTO week_plans (start_date, end_date, data) VALUES (?, ?, ?)
		 ON CONFLICT (start_date) DO UPDATE SET end_date = excluded.end_date, data = excluded.data`,
		w.StartDate, w.EndDate, string(data))
	if err != nil {
		return fmt.Errorf("put week plan: %w", err)
	}
	return nil
}

// WeekPlanFor retrieves the week plan whose date range covers the given
// date, or (nil, nil) if no plan covers it.
func (d *DB) WeekPlanFor(date string) (*models.WeekPlan, error) {
	var data string
	err := d.db.QueryRow(
		`SELECT data FROM week_plans WHERE start_date <= ? AND end_date >= ?
		 ORDER BY start_date DESC LIMIT 1`,
		date, date).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("week plan for %s: %w", date, err)
	}

	var w models.WeekPlan
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return nil, fmt.Errorf("decode week plan: %w", err)
	}
	return &w, nil
}

// PutDailyPlan stores a daily plan, replacing any existing plan for the
// (child, date) pair.
func (d *DB) PutDailyPlan(p *models.DailyPlan) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("put daily plan: encode: %w", err)
	}

	_, err = d.db.Exec(
		`INSERT INTO daily_plans (id, child_id, date, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data`,
		DailyPlanKey(p.ChildID, p.Date), p.ChildID, p.Date, string(data))
	if err != nil {
		return fmt.Errorf("put daily plan: %w", err)
	}
	return nil
}

// GetDailyPlan retrieves the plan for a (child, date), or (nil, nil) if
// none has been generated.
func (d *DB) GetDailyPlan(childID, date string) (*models.DailyPlan, error) {
	var data string
	err := d.db.QueryRow(
		`SELECT data FROM daily_plans WHERE id = ?`,
		DailyPlanKey(childID, date)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily plan: %w", err)
	}

	var p models.DailyPlan
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decode daily plan: %w", err)
	}
	return &p, nil
}
