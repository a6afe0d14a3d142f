package tools

// DataProvider defines the interface for accessing bundled documentation
// files. The abstraction allows dependency injection so tests can run on
// in-memory fixtures instead of the real embedded seeds.
//
// Implementations:
//   - embeddedDataProvider: uses embed.FS for production (real embedded files)
//   - MockDataProvider: uses an in-memory map for testing
type DataProvider interface {
	// ReadFile reads the named file and returns its contents.
	// The name is relative to the package root (e.g., "data/docs/activerecord.html").
	ReadFile(name string) ([]byte, error)
}
