// ABOUTME: Level-up evaluation over a child's practice session stream.
// ABOUTME: Pure function of the session snapshot; performs no writes.
package progression

import (
	"sort"

	"github.com/hearthlog/hearth/internal/models"
)

// LevelUpWindow is how many most-recent sessions must all be hits for the
// level-up signal to fire.
const LevelUpWindow = 3

// EvaluateLevelUp reports whether the most recent attempts at a rung were
// uniformly successful. It considers only sessions matching the given
// (ladderID, targetRungOrder) pair, orders them most-recent-first, and
// fires iff the top three are all hits. Fewer than three matching sessions
// never fire, and a near or miss inside the window blocks the signal even
// when three hits exist further back.
//
// Callers decide what to do with the signal; this function never writes.
func EvaluateLevelUp(sessions []*models.Session, ladderID string, targetRungOrder int) bool {
	var matching []*models.Session
	for _, s := range sessions {
		if s == nil {
			continue
		}
		if s.LadderID == ladderID && s.TargetRungOrder == targetRungOrder {
			matching = append(matching, s)
		}
	}
	if len(matching) < LevelUpWindow {
		return false
	}

	// Most recent first. Clock skew between writers is resolved by string
	// order of the recorded timestamp, not insertion order.
	sort.Slice(matching, func(i, j int) bool {
		return timestampKey(matching[i]) > timestampKey(matching[j])
	})

	for _, s := range matching[:LevelUpWindow] {
		if s.Result != models.ResultHit {
			return false
		}
	}
	return true
}

// timestampKey renders a fixed-width UTC timestamp so lexicographic order
// matches chronological order.
func timestampKey(s *models.Session) string {
	return s.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
}
