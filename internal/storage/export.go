// ABOUTME: Export and import functionality for hearth data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hearthlog/hearth/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for hearth data.
type ExportData struct {
	Version    string                       `json:"version" yaml:"version"`
	ExportedAt time.Time                    `json:"exported_at" yaml:"exported_at"`
	Tool       string                       `json:"tool" yaml:"tool"`
	Children   []*models.Child              `json:"children" yaml:"children"`
	Ladders    []*models.Ladder             `json:"ladders" yaml:"ladders"`
	Progress   []*models.MilestoneProgress  `json:"progress" yaml:"progress"`
	Sessions   []*models.Session            `json:"sessions" yaml:"sessions"`
	DayLogs    []*models.DayLog             `json:"day_logs" yaml:"day_logs"`
	WeekPlans  []*models.WeekPlan           `json:"week_plans" yaml:"week_plans"`
	DailyPlans []*models.DailyPlan          `json:"daily_plans" yaml:"daily_plans"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	children, err := d.ListChildren()
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}

	ladders, err := d.ListLadders("")
	if err != nil {
		return nil, fmt.Errorf("list ladders: %w", err)
	}

	progress, err := d.allProgress()
	if err != nil {
		return nil, err
	}

	sessions, err := d.allSessions()
	if err != nil {
		return nil, err
	}

	dayLogs, err := d.allDayLogs()
	if err != nil {
		return nil, err
	}

	weekPlans, err := d.allWeekPlans()
	if err != nil {
		return nil, err
	}

	dailyPlans, err := d.allDailyPlans()
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "hearth",
		Children:   children,
		Ladders:    ladders,
		Progress:   progress,
		Sessions:   sessions,
		DayLogs:    dayLogs,
		WeekPlans:  weekPlans,
		DailyPlans: dailyPlans,
	}, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, c := range data.Children {
		if err := d.CreateChild(c); err != nil {
			return fmt.Errorf("import child: %w", err)
		}
	}

	for _, l := range data.Ladders {
		if err := d.CreateLadder(l); err != nil {
			return fmt.Errorf("import ladder: %w", err)
		}
	}

	for _, p := range data.Progress {
		if err := d.PutProgress(p); err != nil {
			return fmt.Errorf("import progress: %w", err)
		}
	}

	for _, s := range data.Sessions {
		if err := d.AppendSession(s); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}

	for _, l := range data.DayLogs {
		if err := d.PutDayLog(l); err != nil {
			return fmt.Errorf("import day log: %w", err)
		}
	}

	for _, w := range data.WeekPlans {
		if err := d.PutWeekPlan(w); err != nil {
			return fmt.Errorf("import week plan: %w", err)
		}
	}

	for _, p := range data.DailyPlans {
		if err := d.PutDailyPlan(p); err != nil {
			return fmt.Errorf("import daily plan: %w", err)
		}
	}

	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return RenderJSON(data)
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return RenderYAML(data)
}

// ExportMarkdown exports data as Markdown, one section per child.
func (d *DB) ExportMarkdown(childID string, since string) (string, error) {
	data, err := d.GetAllData()
	if err != nil {
		return "", err
	}
	return RenderMarkdown(data, childID, since)
}

// RenderJSON renders an export snapshot as indented JSON.
func RenderJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// RenderYAML renders an export snapshot as YAML, with sessions grouped per
// child for readability.
func RenderYAML(data *ExportData) ([]byte, error) {
	names := make(map[string]string, len(data.Children))
	for _, c := range data.Children {
		names[c.ID] = c.Name
	}
	childLabel := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return id
	}

	yamlData := struct {
		Version    string                   `yaml:"version"`
		ExportedAt string                   `yaml:"exported_at"`
		Tool       string                   `yaml:"tool"`
		Children   []yamlChild              `yaml:"children"`
		Sessions   map[string][]yamlSession `yaml:"sessions"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Sessions:   make(map[string][]yamlSession),
	}

	for _, c := range data.Children {
		yc := yamlChild{ID: c.ID, Name: c.Name}
		for _, l := range data.Ladders {
			if l.ChildID != c.ID {
				continue
			}
			yl := yamlLadder{ID: l.ID, Title: l.Title, Stream: l.Stream, Rungs: len(l.Rungs)}
			for _, p := range data.Progress {
				if p.LadderID == l.ID && p.Status == models.StatusAchieved {
					yl.Achieved++
				}
			}
			yc.Ladders = append(yc.Ladders, yl)
		}
		yamlData.Children = append(yamlData.Children, yc)
	}

	for _, s := range data.Sessions {
		ys := yamlSession{
			Date:   s.Date,
			Stream: s.StreamID,
			Rung:   s.TargetRungOrder,
			Result: string(s.Result),
		}
		if s.Notes != nil {
			ys.Notes = *s.Notes
		}
		label := childLabel(s.ChildID)
		yamlData.Sessions[label] = append(yamlData.Sessions[label], ys)
	}

	return yaml.Marshal(yamlData)
}

type yamlChild struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Ladders []yamlLadder `yaml:"ladders,omitempty"`
}

type yamlLadder struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Stream   string `yaml:"stream"`
	Rungs    int    `yaml:"rungs"`
	Achieved int    `yaml:"achieved"`
}

type yamlSession struct {
	Date   string `yaml:"date"`
	Stream string `yaml:"stream"`
	Rung   int    `yaml:"rung"`
	Result string `yaml:"result"`
	Notes  string `yaml:"notes,omitempty"`
}

// RenderMarkdown renders an export snapshot as Markdown, one section per
// child, optionally filtered to one child and a since date.
func RenderMarkdown(data *ExportData, childID string, since string) (string, error) {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Hearth Export - %s\n\n", now.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, c := range data.Children {
		if childID != "" && c.ID != childID {
			continue
		}

		sb.WriteString(fmt.Sprintf("## %s\n\n", c.Name))

		for _, l := range data.Ladders {
			if l.ChildID != c.ID {
				continue
			}
			sb.WriteString(fmt.Sprintf("### %s (%s)\n\n", l.Title, l.Stream))
			sb.WriteString("| Rung | Title | Status |\n")
			sb.WriteString("|------|-------|--------|\n")
			for _, r := range l.SortedRungs() {
				status := string(models.StatusLocked)
				for _, p := range data.Progress {
					if p.LadderID == l.ID && p.RungID == r.ID {
						status = string(p.Status)
					}
				}
				sb.WriteString(fmt.Sprintf("| %d | %s | %s |\n", r.Order, r.Title, status))
			}
			sb.WriteString("\n")
		}

		var rows []string
		for _, s := range data.Sessions {
			if s.ChildID != c.ID {
				continue
			}
			if since != "" && s.Date < since {
				continue
			}
			notes := ""
			if s.Notes != nil {
				notes = *s.Notes
			}
			rows = append(rows, fmt.Sprintf("| %s | %s | %d | %s | %s |\n",
				s.Date, s.StreamID, s.TargetRungOrder, s.Result, notes))
		}
		if len(rows) > 0 {
			sb.WriteString("### Sessions\n\n")
			sb.WriteString("| Date | Stream | Rung | Result | Notes |\n")
			sb.WriteString("|------|--------|------|--------|-------|\n")
			for _, row := range rows {
				sb.WriteString(row)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

func (d *DB) allProgress() ([]*models.MilestoneProgress, error) {
	rows, err := d.db.Query(
		`SELECT child_id, ladder_id, rung_id, status, achieved_at, wins
		 FROM milestone_progress ORDER BY child_id, ladder_id`)
	if err != nil {
		return nil, fmt.Errorf("list all progress: %w", err)
	}
	defer rows.Close()

	var records []*models.MilestoneProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("list all progress: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

func (d *DB) allSessions() ([]*models.Session, error) {
	rows, err := d.db.Query(
		`SELECT id, child_id, date, stream_id, ladder_id, target_rung_order,
			result, duration_seconds, supports, notes, created_at
		 FROM sessions ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list all sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (d *DB) allDayLogs() ([]*models.DayLog, error) {
	rows, err := d.db.Query(`SELECT id, data FROM day_logs ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("list all day logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.DayLog
	for rows.Next() {
		var key, data string
		if err := rows.Scan(&key, &data); err != nil {
			return nil, fmt.Errorf("list all day logs: %w", err)
		}
		log, err := decodeDayLog(key, data)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (d *DB) allWeekPlans() ([]*models.WeekPlan, error) {
	rows, err := d.db.Query(`SELECT data FROM week_plans ORDER BY start_date`)
	if err != nil {
		return nil, fmt.Errorf("list all week plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.WeekPlan
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("list all week plans: %w", err)
		}
		var w models.WeekPlan
		if err := json.Unmarshal([]byte(data), &w); err != nil {
			return nil, fmt.Errorf("decode week plan: %w", err)
		}
		plans = append(plans, &w)
	}
	return plans, rows.Err()
}

func (d *DB) allDailyPlans() ([]*models.DailyPlan, error) {
	rows, err := d.db.Query(`SELECT data FROM daily_plans ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("list all daily plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.DailyPlan
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("list all daily plans: %w", err)
		}
		var p models.DailyPlan
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("decode daily plan: %w", err)
		}
		plans = append(plans, &p)
	}
	return plans, rows.Err()
}
