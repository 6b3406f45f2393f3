// Package host provides the opaque collaborators that native modules
// forward to. The bridge never inspects what these do; their failures
// surface unchanged as HostIOError.
package host

import (
	"os"
	"path/filepath"
)

// FileStore is the file-content collaborator.
type FileStore interface {
	ReadText(path string) (string, error)
	WriteText(path, text string) error
}

// OSFileStore reads and writes through the local filesystem.
type OSFileStore struct{}

// ReadText returns the text content of the file at path.
func (OSFileStore) ReadText(path string) (string, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText replaces the file at path with text.
func (OSFileStore) WriteText(path, text string) error {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return os.WriteFile(resolved, []byte(text), 0o644)
}
