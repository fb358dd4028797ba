// ABOUTME: Milestone promotion rules over a rung's accumulated wins.
// ABOUTME: Promotion is due on total wins or a recent-window burst.
package progression

import (
	"time"

	"github.com/hearthlog/hearth/internal/models"
)

const (
	// TotalWinThreshold promotes on lifetime win count alone.
	TotalWinThreshold = 5

	// WindowDays is the size of the recent-wins window in calendar days.
	WindowDays = 7

	// WindowWinThreshold promotes on this many wins inside the window.
	WindowWinThreshold = 3
)

// EvaluateMilestonePromotion reports whether a rung's recorded wins make
// promotion due: either the lifetime count reaches TotalWinThreshold, or at
// least WindowWinThreshold wins fall within the last WindowDays calendar
// days of today, cutoff inclusive.
//
// today must be a canonical YYYY-MM-DD date. Dates compare lexicographically,
// which matches chronological order for the zero-padded format. An
// unparseable today disables the window rule but not the total-count rule.
func EvaluateMilestonePromotion(wins []models.Win, today string) bool {
	if len(wins) >= TotalWinThreshold {
		return true
	}

	ref, err := time.Parse(models.DateLayout, today)
	if err != nil {
		return false
	}
	cutoff := ref.AddDate(0, 0, -WindowDays).Format(models.DateLayout)

	inWindow := 0
	for _, w := range wins {
		if w.Date >= cutoff && w.Date <= today {
			inWindow++
		}
	}
	return inWindow >= WindowWinThreshold
}
