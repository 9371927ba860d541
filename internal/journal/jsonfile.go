package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"expensejournal/internal/atomicfile"
)

// errCorrupt marks a persisted file that exists but cannot be decoded.
var errCorrupt = errors.New("corrupt data file")

// readJSON decodes path into v. It reports found=false, err=nil when the file
// does not exist yet.
func readJSON(path string, v any) (found bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return true, fmt.Errorf("%w: %s: %v", errCorrupt, path, err)
	}
	return true, nil
}

// writeJSON fully rewrites path with v.
func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	b = append(b, '\n')
	if err := atomicfile.WriteBytes(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
