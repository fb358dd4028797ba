// ABOUTME: DayLog model: one child's activity record for one calendar date.
// ABOUTME: Subject sub-records carry heterogeneous done flags per block type.
package models

// ItemLog is a single sub-item within a subject record: a done flag plus
// optional free-form notes.
type ItemLog struct {
	Done  bool   `json:"done"`
	Notes string `json:"notes,omitempty"`
}

// ChecklistItem is one entry on a day-level or block-level checklist.
type ChecklistItem struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// ReadingLog tracks the reading block's sub-items. Handwriting, spelling,
// and copywork double as the writing block's logged signal.
type ReadingLog struct {
	Phonics     ItemLog `json:"phonics"`
	SightWords  ItemLog `json:"sightWords"`
	ReadAloud   ItemLog `json:"readAloud"`
	Handwriting ItemLog `json:"handwriting"`
	Spelling    ItemLog `json:"spelling"`
	Copywork    ItemLog `json:"copywork"`
	Notes       string  `json:"notes,omitempty"`
}

// MathLog tracks the math block's sub-items.
type MathLog struct {
	Lesson ItemLog `json:"lesson"`
	Facts  ItemLog `json:"facts"`
	Game   ItemLog `json:"game"`
	Notes  string  `json:"notes,omitempty"`
}

// SpeechLog tracks speech practice for the day.
type SpeechLog struct {
	Done      bool   `json:"done"`
	Exercises string `json:"exercises,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// FormationLog tracks the morning formation block.
type FormationLog struct {
	Done       bool   `json:"done"`
	Discussion string `json:"discussion,omitempty"`
}

// TogetherLog tracks shared family activity.
type TogetherLog struct {
	Done     bool   `json:"done"`
	Activity string `json:"activity,omitempty"`
}

// MovementLog tracks physical activity.
type MovementLog struct {
	Done     bool   `json:"done"`
	Activity string `json:"activity,omitempty"`
	Minutes  int    `json:"minutes,omitempty"`
}

// ProjectLog tracks build-project progress.
type ProjectLog struct {
	Done     bool   `json:"done"`
	Progress string `json:"progress,omitempty"`
}

// Block is one scheduled block's own entry on a day log.
type Block struct {
	Type          BlockType       `json:"type"`
	Title         string          `json:"title,omitempty"`
	SubjectBucket string          `json:"subjectBucket,omitempty"`
	ActualMinutes int             `json:"actualMinutes,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Checklist     []ChecklistItem `json:"checklist,omitempty"`
}

// DayLog is the record of a single child's activity for a single date.
// Unlike sessions it is not append-only: it is created on first access and
// overwritten in place as the day progresses.
type DayLog struct {
	ChildID   string          `json:"childId"`
	Date      string          `json:"date"` // YYYY-MM-DD
	Blocks    []Block         `json:"blocks,omitempty"`
	Reading   *ReadingLog     `json:"reading,omitempty"`
	Math      *MathLog        `json:"math,omitempty"`
	Speech    *SpeechLog      `json:"speech,omitempty"`
	Formation *FormationLog   `json:"formation,omitempty"`
	Together  *TogetherLog    `json:"together,omitempty"`
	Movement  *MovementLog    `json:"movement,omitempty"`
	Project   *ProjectLog     `json:"project,omitempty"`
	Checklist []ChecklistItem `json:"checklist,omitempty"`
}

// NewDayLog creates an empty DayLog for the given child and date.
func NewDayLog(childID, date string) *DayLog {
	return &DayLog{ChildID: childID, Date: date}
}

// BlockEntry returns the day's entry for a block type, or nil if the block
// has no entry yet.
func (d *DayLog) BlockEntry(bt BlockType) *Block {
	if d == nil {
		return nil
	}
	for i := range d.Blocks {
		if d.Blocks[i].Type == bt {
			return &d.Blocks[i]
		}
	}
	return nil
}

// EnsureBlock returns the day's entry for a block type, creating it if
// absent.
func (d *DayLog) EnsureBlock(bt BlockType) *Block {
	if b := d.BlockEntry(bt); b != nil {
		return b
	}
	d.Blocks = append(d.Blocks, Block{Type: bt, Title: BlockTitles[bt]})
	return &d.Blocks[len(d.Blocks)-1]
}
