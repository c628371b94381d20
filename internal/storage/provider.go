// Package storage defines the output-directory file abstraction.
package storage

// Provider is the interface for output file operations.
type Provider interface {
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the root).
	Write(path string, content []byte) error
}
