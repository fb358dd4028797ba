// ABOUTME: Tests for the default ladder catalog.
// ABOUTME: Verifies stream coverage and the per-ladder order invariant.
package catalog

import (
	"testing"

	"github.com/hearthlog/hearth/internal/models"
)

func TestSeedCoversAllStreams(t *testing.T) {
	ladders := Seed("miles")

	streams := make(map[string]bool)
	for _, l := range ladders {
		streams[l.Stream] = true
		if l.ChildID != "miles" {
			t.Errorf("ladder %s bound to %s, want miles", l.Title, l.ChildID)
		}
	}

	for _, want := range []string{
		models.StreamReading, models.StreamWriting, models.StreamMath,
		models.StreamSpeech, models.StreamProject,
	} {
		if !streams[want] {
			t.Errorf("no seeded ladder for stream %s", want)
		}
	}
}

func TestSeedRungOrdersUniqueAndAscending(t *testing.T) {
	for _, l := range Seed("june") {
		seen := make(map[int]bool)
		for i, r := range l.Rungs {
			if r.Order != i+1 {
				t.Errorf("%s rung %d has order %d, want %d", l.Title, i, r.Order, i+1)
			}
			if seen[r.Order] {
				t.Errorf("%s has duplicate rung order %d", l.Title, r.Order)
			}
			seen[r.Order] = true
			if r.ID == "" || r.Title == "" {
				t.Errorf("%s rung %d missing id or title", l.Title, i)
			}
		}
	}
}

func TestSeedGeneratesFreshIDs(t *testing.T) {
	a := Seed("miles")
	b := Seed("miles")

	if a[0].ID == b[0].ID {
		t.Error("repeated seeding must not reuse ladder IDs")
	}
}
