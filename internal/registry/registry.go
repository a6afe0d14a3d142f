package registry

import (
	"log/slog"

	"github.com/railsdocs/mcp-server/internal/docs"
)

// DefaultLimit is the number of matches returned when the caller does not
// ask for a specific limit.
const DefaultLimit = 10

// DefaultSnippetLength bounds the content snippet carried by each match.
const DefaultSnippetLength = 300

// Registry owns the loaded documentation sections, keyed by group and
// preserving group load order. Populate it fully before serving; once
// populated it is read-only and safe for concurrent searches. A reload
// builds a new Registry rather than mutating a live one.
type Registry struct {
	order         []string
	sections      map[string][]docs.Section
	snippetLength int
	logger        *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// WithSnippetLength overrides the maximum length of match content snippets.
func WithSnippetLength(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.snippetLength = n
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		sections:      make(map[string][]docs.Section),
		snippetLength: DefaultSnippetLength,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add stores a group's sections, replacing any previous sections for that
// group. The first Add of a group fixes its position in iteration order.
// Not safe to call concurrently with Search.
func (r *Registry) Add(group string, sections []docs.Section) {
	if _, ok := r.sections[group]; !ok {
		r.order = append(r.order, group)
	}
	r.sections[group] = sections
}

// Groups returns the loaded group names in load order.
func (r *Registry) Groups() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether a group has been loaded.
func (r *Registry) Has(group string) bool {
	_, ok := r.sections[group]
	return ok
}

// Sections returns a group's sections in document order. Callers must not
// mutate the returned slice.
func (r *Registry) Sections(group string) []docs.Section {
	return r.sections[group]
}

// Len returns the total number of sections across all groups.
func (r *Registry) Len() int {
	n := 0
	for _, secs := range r.sections {
		n += len(secs)
	}
	return n
}

// all returns every section, groups in load order.
func (r *Registry) all() []docs.Section {
	out := make([]docs.Section, 0, r.Len())
	for _, g := range r.order {
		out = append(out, r.sections[g]...)
	}
	return out
}
