package tools

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/railsdocs/mcp-server/internal/config"
)

// DocService owns the loaded documentation and its reload lifecycle. Tool
// and resource handlers read the current snapshot through it; reloads are
// serialized and swap the snapshot atomically so concurrent searches never
// observe a half-built registry.
type DocService struct {
	cfg      *config.Config
	provider DataProvider
	logger   *slog.Logger
	loader   *loader

	current  atomic.Pointer[snapshot]
	reloadMu sync.Mutex
}

// Option configures a DocService.
type Option func(*DocService)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *DocService) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// WithDataProvider overrides the provider backing the embedded seed
// documents. Default is the embedded filesystem.
func WithDataProvider(provider DataProvider) Option {
	return func(s *DocService) {
		if provider == nil {
			provider = defaultDataProvider
		}
		s.provider = provider
	}
}

// NewDocService loads the configured documentation and returns a service
// ready to register tools and resources. A server with zero loaded groups
// still starts; it just has nothing to search until a reload finds files.
func NewDocService(cfg *config.Config, opts ...Option) (*DocService, error) {
	s := &DocService{
		cfg:      cfg,
		provider: defaultDataProvider,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loader = newLoader(cfg, s.provider, s.logger)

	snap, err := s.loader.load()
	if err != nil {
		return nil, err
	}
	if len(snap.order) == 0 {
		s.logger.Warn("no documentation groups loaded",
			"configured", len(cfg.Groups))
	}
	s.current.Store(snap)
	return s, nil
}

// snapshot returns the current documentation generation.
func (s *DocService) snapshot() *snapshot {
	return s.current.Load()
}

// reload rebuilds the snapshot from the same sources the initial load used
// and swaps it in. The old snapshot stays valid for in-flight calls.
func (s *DocService) reload() (*snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := s.loader.load()
	if err != nil {
		return nil, err
	}
	s.current.Store(snap)
	return snap, nil
}

// RegisterTools registers the documentation tools on the server.
func (s *DocService) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "search",
			Description: "Search the Rails API documentation. Returns matching sections ranked by relevance, optionally restricted to one documentation group.",
		},
		s.handleSearch,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_sections",
			Description: "List the loaded documentation groups with their resource URIs.",
		},
		s.handleListSections,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "reload_docs",
			Description: "Reload the documentation files from disk and embedded seeds, replacing the in-memory sections.",
		},
		s.handleReload,
	)

	s.logger.Info("documentation tools registered", "tools", 3)
}
