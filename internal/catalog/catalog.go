// ABOUTME: Seedable default ladder catalog, one ladder per learning stream.
// ABOUTME: Rung sequences are starting points; rungs stay editable afterward.
package catalog

import (
	"github.com/hearthlog/hearth/internal/models"
)

// seedDef is a static ladder definition before it is bound to a child.
type seedDef struct {
	title  string
	stream string
	rungs  []string
}

var seedDefs = []seedDef{
	{
		title:  "Early Reading",
		stream: models.StreamReading,
		rungs: []string{
			"Knows all letter sounds",
			"Blends CVC words",
			"Reads digraphs (sh, ch, th)",
			"Reads consonant blends",
			"Reads a full Bob book aloud",
			"Reads simple sentences with sight words",
		},
	},
	{
		title:  "Handwriting & Spelling",
		stream: models.StreamWriting,
		rungs: []string{
			"Forms all lowercase letters",
			"Copies a short sentence",
			"Spells CVC words from dictation",
			"Writes one sentence unaided",
		},
	},
	{
		title:  "Number Sense",
		stream: models.StreamMath,
		rungs: []string{
			"Counts to 100",
			"Adds within 10",
			"Subtracts within 10",
			"Adds within 20",
			"Skip counts by 2s, 5s, 10s",
		},
	},
	{
		title:  "Clear Speech",
		stream: models.StreamSpeech,
		rungs: []string{
			"Produces /r/ in isolation",
			"Produces /r/ in words",
			"Produces /r/ in sentences",
			"Carries over in conversation",
		},
	},
	{
		title:  "Builder Skills",
		stream: models.StreamProject,
		rungs: []string{
			"Follows a three-step build plan",
			"Measures and marks cuts",
			"Drives screws straight",
			"Plans a small build end to end",
		},
	},
}

// Seed builds the default ladder set for a child. Every call generates
// fresh IDs; seeding the same child twice creates duplicate ladders, so
// callers should check for existing ladders first.
func Seed(childID string) []*models.Ladder {
	ladders := make([]*models.Ladder, 0, len(seedDefs))
	for _, def := range seedDefs {
		l := models.NewLadder(childID, def.title, def.stream)
		for i, title := range def.rungs {
			l.Rungs = append(l.Rungs, models.NewRung(title, i+1))
		}
		ladders = append(ladders, l)
	}
	return ladders
}

// Streams returns the stream IDs covered by the default catalog.
func Streams() []string {
	out := make([]string, 0, len(seedDefs))
	for _, def := range seedDefs {
		out = append(out, def.stream)
	}
	return out
}
