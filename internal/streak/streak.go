// ABOUTME: Consecutive-day activity streak over session or day-log dates.
// ABOUTME: Anchored at today or yesterday; the first gap ends the walk.
package streak

import (
	"sort"
	"time"

	"github.com/hearthlog/hearth/internal/models"
)

// Compute returns the length of the consecutive-day streak ending at today
// or yesterday. dates may contain duplicates and any order; entries that do
// not parse as canonical dates are ignored. An activity set whose most
// recent day is older than yesterday scores zero.
func Compute(dates []string, today string) int {
	ref, err := time.Parse(models.DateLayout, today)
	if err != nil {
		return 0
	}

	seen := make(map[string]bool, len(dates))
	var distinct []time.Time
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		t, err := time.Parse(models.DateLayout, d)
		if err != nil {
			continue
		}
		distinct = append(distinct, t)
	}
	if len(distinct) == 0 {
		return 0
	}

	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].After(distinct[j])
	})

	// The streak anchor must be today or yesterday.
	gap := daysBetween(distinct[0], ref)
	if gap < 0 || gap > 1 {
		return 0
	}

	count := 1
	for i := 1; i < len(distinct); i++ {
		if daysBetween(distinct[i], distinct[i-1]) != 1 {
			break
		}
		count++
	}
	return count
}

// FromSessions computes the streak from a child's practice sessions.
func FromSessions(sessions []*models.Session, childID, today string) int {
	var dates []string
	for _, s := range sessions {
		if s == nil || s.ChildID != childID {
			continue
		}
		dates = append(dates, s.Date)
	}
	return Compute(dates, today)
}

// FromDayLogs computes the streak from day logs, counting a day only when
// at least one category was logged.
func FromDayLogs(logs []*models.DayLog, today string) int {
	var dates []string
	for _, l := range logs {
		if l == nil || !hasLoggedCategory(l) {
			continue
		}
		dates = append(dates, l.Date)
	}
	return Compute(dates, today)
}

// hasLoggedCategory reports whether any subject sub-record or block entry
// on the day carries a done signal or recorded minutes.
func hasLoggedCategory(l *models.DayLog) bool {
	if r := l.Reading; r != nil {
		for _, item := range []models.ItemLog{r.Phonics, r.SightWords, r.ReadAloud, r.Handwriting, r.Spelling, r.Copywork} {
			if item.Done {
				return true
			}
		}
	}
	if m := l.Math; m != nil && (m.Lesson.Done || m.Facts.Done || m.Game.Done) {
		return true
	}
	if l.Speech != nil && l.Speech.Done {
		return true
	}
	if l.Formation != nil && l.Formation.Done {
		return true
	}
	if l.Together != nil && l.Together.Done {
		return true
	}
	if l.Movement != nil && l.Movement.Done {
		return true
	}
	if l.Project != nil && l.Project.Done {
		return true
	}
	for _, item := range l.Checklist {
		if item.Done {
			return true
		}
	}
	for _, b := range l.Blocks {
		if b.ActualMinutes > 0 {
			return true
		}
	}
	return false
}

// daysBetween returns the whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
