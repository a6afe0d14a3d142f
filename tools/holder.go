package tools

import (
	"time"

	"github.com/railsdocs/mcp-server/internal/registry"
)

// snapshot is one immutable generation of loaded documentation. Searches
// and resource reads always see a whole snapshot; a reload builds a new
// one and swaps it in atomically, so in-flight calls keep a consistent
// view and old snapshots are simply garbage collected.
type snapshot struct {
	registry *registry.Registry

	// order lists the loaded group names in manifest order. Groups whose
	// files were missing everywhere do not appear.
	order []string

	// titles maps group name to display title. Includes the complete
	// pseudo-group when its document was loaded.
	titles map[string]string

	// raw holds the original HTML bytes per group for resource reads.
	// Includes the complete pseudo-group when its document was loaded.
	raw map[string][]byte

	loadedAt time.Time
}

// hasDoc reports whether a raw document was loaded for name.
func (s *snapshot) hasDoc(name string) bool {
	_, ok := s.raw[name]
	return ok
}
