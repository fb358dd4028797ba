// ABOUTME: Backend-to-backend data migration (e.g. SQLite to Charm KV).
// ABOUTME: Copies the full export snapshot from one Repository to another.
package storage

import (
	"fmt"
)

// MigrateSummary reports what a backend migration copied.
type MigrateSummary struct {
	Children   int
	Ladders    int
	Progress   int
	Sessions   int
	DayLogs    int
	WeekPlans  int
	DailyPlans int
}

// Total returns the number of records copied across all collections.
func (s MigrateSummary) Total() int {
	return s.Children + s.Ladders + s.Progress + s.Sessions + s.DayLogs + s.WeekPlans + s.DailyPlans
}

// MigrateData copies all records from src into dst. The destination should
// be empty; duplicate IDs fail the copy partway through.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	data, err := src.GetAllData()
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	if err := dst.ImportData(data); err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}

	return &MigrateSummary{
		Children:   len(data.Children),
		Ladders:    len(data.Ladders),
		Progress:   len(data.Progress),
		Sessions:   len(data.Sessions),
		DayLogs:    len(data.DayLogs),
		WeekPlans:  len(data.WeekPlans),
		DailyPlans: len(data.DailyPlans),
	}, nil
}
