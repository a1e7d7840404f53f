package profile

import (
	"sort"
	"sync"
)

// registry stores all check definitions keyed by ID.
var registry = struct {
	mu     sync.RWMutex
	checks map[string]CheckDef
}{checks: make(map[string]CheckDef)}

// Register adds a check definition. Called from init() in the checks package.
func Register(def CheckDef) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.checks[def.ID] = def
}

// All returns every registered check sorted by section number. This is the
// externally visible run order: findings and actions are always appended in
// this order, never reordered or deduplicated.
func All() []CheckDef {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	defs := make([]CheckDef, 0, len(registry.checks))
	for _, def := range registry.checks {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Section < defs[j].Section })
	return defs
}

// ByID returns a check definition by its ID.
func ByID(id string) (CheckDef, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	def, ok := registry.checks[id]
	return def, ok
}
