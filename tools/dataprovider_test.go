package tools

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestMockDataProvider_ReadFile(t *testing.T) {
	mock := NewMockDataProvider()

	// Add a test file
	mock.AddFile("data/docs/test.html", []byte("<h1>Test</h1>"))

	// Read existing file
	content, err := mock.ReadFile("data/docs/test.html")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(content) != "<h1>Test</h1>" {
		t.Errorf("Expected '<h1>Test</h1>', got: %s", string(content))
	}

	// Try to read non-existent file
	_, err = mock.ReadFile("data/docs/missing.html")
	if err != fs.ErrNotExist {
		t.Errorf("Expected fs.ErrNotExist, got: %v", err)
	}
}

func TestMockDataProvider_SetAndReset(t *testing.T) {
	// Create mock provider
	mock := NewMockDataProvider()
	mock.AddFile("data/docs/test.html", []byte("<h1>Mock</h1>"))

	// Set as default
	originalProvider := defaultDataProvider
	defer func() {
		defaultDataProvider = originalProvider
	}()

	SetDefaultDataProvider(mock)

	// Verify it's being used
	content, err := defaultDataProvider.ReadFile("data/docs/test.html")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(content) != "<h1>Mock</h1>" {
		t.Errorf("Expected mock content, got: %s", string(content))
	}

	// Reset to default
	ResetDefaultDataProvider()

	// Verify reset worked (defaultDataProvider should be different now)
	if defaultDataProvider == mock {
		t.Error("Expected defaultDataProvider to be reset")
	}
}

func TestEmbeddedDataProvider_Seeds(t *testing.T) {
	provider := NewEmbeddedDataProvider()

	// Every default group ships with a seed document
	data, err := provider.ReadFile("data/docs/activerecord.html")
	if err != nil {
		t.Fatalf("Expected embedded seed, got: %v", err)
	}
	if !strings.Contains(string(data), "<h1>") {
		t.Error("Expected an HTML document with headings")
	}

	// Missing paths report fs.ErrNotExist like any filesystem
	_, err = provider.ReadFile("data/docs/missing.html")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got: %v", err)
	}
}
