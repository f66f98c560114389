package dialect

import (
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/lookgen/pkg/core"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
}

// Get returns a dialect by name, or an *core.UnsupportedDialectError naming
// the supported set. Unsupported dialects surface once at configuration
// time, not per column.
func Get(name string) (*Dialect, error) {
	dialectsMu.RLock()
	d, ok := dialects[strings.ToLower(name)]
	dialectsMu.RUnlock()
	if !ok {
		return nil, &core.UnsupportedDialectError{Dialect: name, Supported: List()}
	}
	return d, nil
}

// List returns all registered dialect names (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
