// ABOUTME: Per-child instruction template registry.
// ABOUTME: Templates slot between weekly goals and the generic defaults.
package today

import (
	"sync"

	"github.com/hearthlog/hearth/internal/models"
)

// Template maps block types to a child's standing instruction lists.
type Template map[models.BlockType][]string

var (
	templateMu sync.RWMutex
	templates  = map[string]Template{}
)

// RegisterTemplate installs (or replaces) the instruction template for a
// child ID. Used by hosts that carry standing per-child content outside the
// weekly plan.
func RegisterTemplate(childID string, tpl Template) {
	templateMu.Lock()
	defer templateMu.Unlock()
	templates[childID] = tpl
}

// ClearTemplates removes all registered templates.
func ClearTemplates() {
	templateMu.Lock()
	defer templateMu.Unlock()
	templates = map[string]Template{}
}

func templateFor(childID string) Template {
	templateMu.RLock()
	defer templateMu.RUnlock()
	return templates[childID]
}
