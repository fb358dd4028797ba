// ABOUTME: Export and import support for the Charm KV backend.
// ABOUTME: Produces the same snapshot shape as the SQLite backend.
package charm

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/storage"
)

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	children, err := c.ListChildren()
	if err != nil {
		return nil, err
	}

	ladders, err := c.ListLadders("")
	if err != nil {
		return nil, err
	}

	progress, err := c.allProgress()
	if err != nil {
		return nil, err
	}

	sessions, err := c.filterSessions(func(*models.Session) bool { return true })
	if err != nil {
		return nil, err
	}
	// Oldest first for stable export output
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	dayLogs, err := c.allDayLogs()
	if err != nil {
		return nil, err
	}

	weekPlans, err := c.allWeekPlans()
	if err != nil {
		return nil, err
	}

	dailyPlans, err := c.allDailyPlans()
	if err != nil {
		return nil, err
	}

	return &storage.ExportData{
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
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, child := range data.Children {
		if err := c.CreateChild(child); err != nil {
			return fmt.Errorf("import child: %w", err)
		}
	}
	for _, l := range data.Ladders {
		if err := c.CreateLadder(l); err != nil {
			return fmt.Errorf("import ladder: %w", err)
		}
	}
	for _, p := range data.Progress {
		if err := c.PutProgress(p); err != nil {
			return fmt.Errorf("import progress: %w", err)
		}
	}
	for _, s := range data.Sessions {
		if err := c.AppendSession(s); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	for _, l := range data.DayLogs {
		if err := c.PutDayLog(l); err != nil {
			return fmt.Errorf("import day log: %w", err)
		}
	}
	for _, w := range data.WeekPlans {
		if err := c.PutWeekPlan(w); err != nil {
			return fmt.Errorf("import week plan: %w", err)
		}
	}
	for _, p := range data.DailyPlans {
		if err := c.PutDailyPlan(p); err != nil {
			return fmt.Errorf("import daily plan: %w", err)
		}
	}
	return nil
}

func (c *Client) allProgress() ([]*models.MilestoneProgress, error) {
	allData, err := c.listByPrefix(ProgressPrefix)
	if err != nil {
		return nil, fmt.Errorf("list all progress: %w", err)
	}

	var records []*models.MilestoneProgress
	for _, data := range allData {
		p, err := unmarshalJSON[models.MilestoneProgress](data)
		if err != nil {
			continue // Skip invalid entries
		}
		records = append(records, p)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].ChildID != records[j].ChildID {
			return records[i].ChildID < records[j].ChildID
		}
		return records[i].LadderID < records[j].LadderID
	})
	return records, nil
}

func (c *Client) allDayLogs() ([]*models.DayLog, error) {
	allData, err := c.listByPrefix(DayLogPrefix)
	if err != nil {
		return nil, fmt.Errorf("list all day logs: %w", err)
	}

	var logs []*models.DayLog
	for key, data := range allData {
		log, err := unmarshalJSON[models.DayLog](data)
		if err != nil {
			continue // Skip invalid entries
		}
		docKey := strings.TrimPrefix(key, DayLogPrefix)
		if log.Date == "" {
			log.Date = storage.DateFromDayLogKey(docKey)
		}
		if log.ChildID == "" {
			log.ChildID = storage.ChildFromDayLogKey(docKey)
		}
		logs = append(logs, log)
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})
	return logs, nil
}

func (c *Client) allWeekPlans() ([]*models.WeekPlan, error) {
	allData, err := c.listByPrefix(WeekPlanPrefix)
	if err != nil {
		return nil, fmt.Errorf("list all week plans: %w", err)
	}

	var plans []*models.WeekPlan
	for _, data := range allData {
		w, err := unmarshalJSON[models.WeekPlan](data)
		if err != nil {
			continue // Skip invalid entries
		}
		plans = append(plans, w)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].StartDate < plans[j].StartDate
	})
	return plans, nil
}

func (c *Client) allDailyPlans() ([]*models.DailyPlan, error) {
	allData, err := c.listByPrefix(DailyPlanPrefix)
	if err != nil {
		return nil, fmt.Errorf("list all daily plans: %w", err)
	}

	var plans []*models.DailyPlan
	for _, data := range allData {
		p, err := unmarshalJSON[models.DailyPlan](data)
		if err != nil {
			continue // Skip invalid entries
		}
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Date < plans[j].Date
	})
	return plans, nil
}
