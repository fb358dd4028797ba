// ABOUTME: Repository interface for hearth data storage.
// ABOUTME: Defines the contract implemented by the SQLite and Charm backends.
package storage

import (
	"github.com/hearthlog/hearth/internal/models"
)

// Repository defines the storage interface for hearth data.
// This interface allows swapping implementations (e.g., for testing).
//
// Lookups for lazily created records (day logs, milestone progress, plans)
// return (nil, nil) when no record exists; only storage failures are errors.
type Repository interface {
	// Child operations
	CreateChild(c *models.Child) error
	GetChild(id string) (*models.Child, error)
	ListChildren() ([]*models.Child, error)
	UpdateChild(c *models.Child) error
	DeleteChild(id string) error

	// Ladder operations
	CreateLadder(l *models.Ladder) error
	GetLadder(id string) (*models.Ladder, error)
	ListLadders(childID string) ([]*models.Ladder, error)
	UpdateLadder(l *models.Ladder) error
	DeleteLadder(id string) error

	// Milestone progress operations
	GetProgress(childID, ladderID, rungID string) (*models.MilestoneProgress, error)
	ListProgress(childID, ladderID string) ([]*models.MilestoneProgress, error)
	PutProgress(p *models.MilestoneProgress) error

	// Session operations (append-only; sessions are never updated)
	AppendSession(s *models.Session) error
	ListSessions(childID string, limit int) ([]*models.Session, error)
	ListRungSessions(ladderID string, targetRungOrder int) ([]*models.Session, error)

	// Day log operations. Get falls back across the legacy key formats;
	// Put always writes the canonical key.
	GetDayLog(childID, date string) (*models.DayLog, error)
	PutDayLog(l *models.DayLog) error
	ListDayLogs(childID string) ([]*models.DayLog, error)

	// Week plan operations
	PutWeekPlan(w *models.WeekPlan) error
	WeekPlanFor(date string) (*models.WeekPlan, error)

	// Daily plan operations. Put overwrites any plan for the (child, date).
	PutDailyPlan(p *models.DailyPlan) error
	GetDailyPlan(childID, date string) (*models.DailyPlan, error)

	// MigrateDayLogKeys rewrites legacy-keyed day-log documents to the
	// canonical key form, returning how many were rewritten.
	MigrateDayLogKeys() (int, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
