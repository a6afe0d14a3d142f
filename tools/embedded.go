package tools

import (
	"embed"
)

// Embed seed documentation files into the binary.
// This ensures the MCP server works standalone without requiring
// external documentation files to be present on the filesystem.
// A configured docs directory always takes precedence; the seeds
// are the fallback.

//go:embed data/docs/*.html
var embeddedFS embed.FS

// embeddedDataProvider implements DataProvider using embed.FS.
// This is the production implementation that uses actual embedded files.
type embeddedDataProvider struct {
	fs embed.FS
}

// NewEmbeddedDataProvider creates a production DataProvider that uses embedded files.
func NewEmbeddedDataProvider() DataProvider {
	return &embeddedDataProvider{fs: embeddedFS}
}

// ReadFile reads the named file from the embedded filesystem.
func (p *embeddedDataProvider) ReadFile(name string) ([]byte, error) {
	return p.fs.ReadFile(name)
}

// Default provider used by package-level constructors.
var defaultDataProvider DataProvider = NewEmbeddedDataProvider()
