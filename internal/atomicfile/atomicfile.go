// Package atomicfile writes files through a temporary sibling and a rename,
// so readers never observe a partially written destination and a failed
// write leaves any previous file in place.
package atomicfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Write creates or replaces path with whatever fn writes.
func Write(path string, perm os.FileMode, fn func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	// No-op once CloseAtomicallyReplace has succeeded.
	defer pf.Cleanup()

	if err := fn(pf); err != nil {
		return err
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// WriteBytes is Write for an in-memory payload.
func WriteBytes(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := renameio.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
