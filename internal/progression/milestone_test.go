// ABOUTME: Tests for milestone promotion over accumulated wins.
// ABOUTME: Covers total threshold, inclusive window boundary, and empty input.
package progression

import (
	"testing"

	"github.com/hearthlog/hearth/internal/models"
)

func wins(dates ...string) []models.Win {
	out := make([]models.Win, 0, len(dates))
	for _, d := range dates {
		out = append(out, models.Win{Date: d})
	}
	return out
}

func TestEvaluateMilestonePromotion(t *testing.T) {
	tests := []struct {
		name  string
		wins  []models.Win
		today string
		want  bool
	}{
		{
			name:  "empty",
			wins:  nil,
			today: "2026-02-16",
			want:  false,
		},
		{
			name:  "one old win",
			wins:  wins("2026-02-10"),
			today: "2026-02-16",
			want:  false,
		},
		{
			name:  "three wins in window",
			wins:  wins("2026-02-10", "2026-02-14", "2026-02-15"),
			today: "2026-02-16",
			want:  true,
		},
		{
			name:  "three wins but one outside window",
			wins:  wins("2026-02-01", "2026-02-14", "2026-02-15"),
			today: "2026-02-16",
			want:  false,
		},
		{
			name:  "window cutoff is inclusive",
			wins:  wins("2026-02-09", "2026-02-10", "2026-02-16"),
			today: "2026-02-16",
			want:  true,
		},
		{
			name:  "future-dated wins do not count toward window",
			wins:  wins("2026-02-20", "2026-02-21", "2026-02-22"),
			today: "2026-02-16",
			want:  false,
		},
		{
			name:  "five total wins regardless of age",
			wins:  wins("2025-01-01", "2025-03-01", "2025-05-01", "2025-07-01", "2025-09-01"),
			today: "2026-02-16",
			want:  true,
		},
		{
			name:  "four old wins insufficient",
			wins:  wins("2025-01-01", "2025-03-01", "2025-05-01", "2025-07-01"),
			today: "2026-02-16",
			want:  false,
		},
		{
			name:  "window crosses a month boundary",
			wins:  wins("2026-02-26", "2026-03-01", "2026-03-03"),
			today: "2026-03-04",
			want:  true,
		},
		{
			name:  "bad today disables window rule only",
			wins:  wins("2026-02-14", "2026-02-15", "2026-02-16"),
			today: "not-a-date",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateMilestonePromotion(tt.wins, tt.today); got != tt.want {
				t.Errorf("EvaluateMilestonePromotion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateMilestonePromotionTotalIgnoresBadToday(t *testing.T) {
	fiveWins := wins("2025-01-01", "2025-02-01", "2025-03-01", "2025-04-01", "2025-05-01")
	if !EvaluateMilestonePromotion(fiveWins, "garbage") {
		t.Error("total-count rule must not depend on today parsing")
	}
}
