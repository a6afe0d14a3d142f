package tools

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/railsdocs/mcp-server/internal/config"
)

func newTestService(t *testing.T) *DocService {
	t.Helper()
	svc, err := NewDocService(testConfig(t),
		WithLogger(quietLogger()),
		WithDataProvider(seedProvider()),
	)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	return svc
}

func TestNewDocService(t *testing.T) {
	svc := newTestService(t)

	snap := svc.snapshot()
	if snap == nil {
		t.Fatal("Expected an initial snapshot")
	}
	if len(snap.order) != 2 {
		t.Errorf("Expected 2 loaded groups, got %d", len(snap.order))
	}
	if got := snap.registry.Len(); got != 5 {
		t.Errorf("Expected 5 sections, got %d", got)
	}
}

func TestNewDocServiceZeroGroups(t *testing.T) {
	// No documents anywhere: the server still starts, it just has nothing
	// to search until a reload finds files.
	svc, err := NewDocService(testConfig(t),
		WithLogger(quietLogger()),
		WithDataProvider(NewMockDataProvider()),
	)
	if err != nil {
		t.Fatalf("Expected service to start with zero groups, got: %v", err)
	}
	if got := len(svc.snapshot().order); got != 0 {
		t.Errorf("Expected 0 loaded groups, got %d", got)
	}
}

func TestNewDocServiceEmbeddedSeeds(t *testing.T) {
	// The default manifest must be fully served by the embedded seeds.
	cfg := config.Default()
	cfg.DocsDir = t.TempDir()

	svc, err := NewDocService(cfg, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("Expected embedded seeds to load, got: %v", err)
	}

	snap := svc.snapshot()
	if got := len(snap.order); got != len(cfg.Groups) {
		t.Errorf("Expected %d groups from embedded seeds, got %d", len(cfg.Groups), got)
	}
	if snap.registry.Len() == 0 {
		t.Error("Expected embedded seeds to contain sections")
	}
	if !snap.hasDoc(config.ReservedGroup) {
		t.Error("Expected the embedded complete document to load")
	}
}

func TestDocServiceOptions(t *testing.T) {
	svc, err := NewDocService(testConfig(t), WithLogger(nil), WithDataProvider(nil))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if svc.logger != slog.Default() {
		t.Error("Expected nil logger to fall back to slog.Default()")
	}
	if svc.provider != defaultDataProvider {
		t.Error("Expected nil provider to fall back to the package default")
	}
}

func TestDocServiceReload(t *testing.T) {
	cfg := testConfig(t)
	mock := NewMockDataProvider()
	mock.AddFile("data/docs/activerecord.html", []byte(activeRecordDoc))

	svc, err := NewDocService(cfg, WithLogger(quietLogger()), WithDataProvider(mock))
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	before := svc.snapshot()
	if before.registry.Has("actionview") {
		t.Fatal("actionview should not be loaded yet")
	}

	// Drop the missing document into the docs directory and reload
	path := filepath.Join(cfg.DocsDir, "actionview.html")
	if err := os.WriteFile(path, []byte(actionViewDoc), 0644); err != nil {
		t.Fatalf("Failed to write document: %v", err)
	}

	after, err := svc.reload()
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if !after.registry.Has("actionview") {
		t.Error("Expected reload to pick up the new document")
	}
	if svc.snapshot() != after {
		t.Error("Expected reload to swap the current snapshot")
	}
	if before == after {
		t.Error("Expected reload to build a fresh snapshot")
	}

	// The old snapshot stays intact for in-flight readers
	if before.registry.Has("actionview") {
		t.Error("Old snapshot should be unchanged")
	}
}
