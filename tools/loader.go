package tools

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/railsdocs/mcp-server/internal/config"
	"github.com/railsdocs/mcp-server/internal/docs"
	"github.com/railsdocs/mcp-server/internal/registry"
)

// embeddedDocsDir is where the seed documents live inside the embedded FS.
const embeddedDocsDir = "data/docs"

// completeTitle is the display title of the complete pseudo-group.
const completeTitle = "All"

// loader turns the configured documentation files into snapshots. Each
// group file is read from the docs directory first and falls back to the
// embedded seed copy; extraction runs on a bounded worker pool.
type loader struct {
	cfg      *config.Config
	docsDir  string
	provider DataProvider
	logger   *slog.Logger
}

func newLoader(cfg *config.Config, provider DataProvider, logger *slog.Logger) *loader {
	return &loader{
		cfg:      cfg,
		docsDir:  resolveDocsDir(cfg.DocsDir),
		provider: provider,
		logger:   logger,
	}
}

// resolveDocsDir picks the on-disk documentation directory: the configured
// one when set, otherwise ~/.rails-docs-mcp/docs when it exists. An empty
// result means only embedded seeds are available.
func resolveDocsDir(configured string) string {
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".rails-docs-mcp", "docs")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return ""
}

// load reads and extracts every configured document and assembles an
// immutable snapshot. Groups whose files are missing from both the docs
// directory and the embedded seeds are skipped with a warning; a document
// that cannot be parsed fails the whole load.
func (l *loader) load() (*snapshot, error) {
	started := time.Now()

	type parsed struct {
		raw      []byte
		sections []docs.Section
		missing  bool
		err      error
	}
	results := make([]parsed, len(l.cfg.Groups))

	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, g := range l.cfg.Groups {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			raw, err := l.readDoc(g.File)
			if errors.Is(err, fs.ErrNotExist) {
				results[i] = parsed{missing: true}
				return
			}
			if err != nil {
				results[i] = parsed{err: err}
				return
			}

			sections, err := docs.Extract(bytes.NewReader(raw), g.Name)
			if err != nil {
				results[i] = parsed{err: fmt.Errorf("extract %s: %w", g.File, err)}
				return
			}
			results[i] = parsed{raw: raw, sections: sections}
		})
		if submitErr != nil {
			wg.Done()
			return nil, fmt.Errorf("schedule extraction: %w", submitErr)
		}
	}
	wg.Wait()

	snap := &snapshot{
		registry: registry.New(
			registry.WithLogger(l.logger),
			registry.WithSnippetLength(l.cfg.SnippetLength),
		),
		titles:   make(map[string]string),
		raw:      make(map[string][]byte),
		loadedAt: started,
	}

	for i, g := range l.cfg.Groups {
		res := results[i]
		switch {
		case res.err != nil:
			return nil, res.err
		case res.missing:
			l.logger.Warn("documentation file not found, skipping group",
				"group", g.Name, "file", g.File)
		default:
			snap.registry.Add(g.Name, res.sections)
			snap.order = append(snap.order, g.Name)
			snap.titles[g.Name] = g.DisplayTitle()
			snap.raw[g.Name] = res.raw
		}
	}

	if err := l.loadComplete(snap); err != nil {
		return nil, err
	}

	l.logger.Info("documentation loaded",
		"groups", len(snap.order),
		"sections", snap.registry.Len(),
		"docs_dir", l.docsDir,
		"duration", time.Since(started))
	return snap, nil
}

// loadComplete reads the complete document, which backs the rails-api://all
// resource but contributes no searchable sections of its own: the per-group
// documents already cover its content.
func (l *loader) loadComplete(snap *snapshot) error {
	if l.cfg.CompleteFile == "" {
		return nil
	}
	raw, err := l.readDoc(l.cfg.CompleteFile)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("complete documentation file not found",
			"file", l.cfg.CompleteFile)
		return nil
	}
	if err != nil {
		return err
	}
	snap.raw[config.ReservedGroup] = raw
	snap.titles[config.ReservedGroup] = completeTitle
	return nil
}

// readDoc resolves one document by name: docs directory first, embedded
// seed second. Returns fs.ErrNotExist when neither has it.
func (l *loader) readDoc(name string) ([]byte, error) {
	if l.docsDir != "" {
		p := filepath.Join(l.docsDir, name)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
	}
	return l.provider.ReadFile(path.Join(embeddedDocsDir, name))
}
