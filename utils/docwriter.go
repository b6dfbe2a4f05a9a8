package utils

import (
	"os"
	"path/filepath"
)

// WriteDocument persists rendered text to the caller-chosen destination.
// An empty destination is a no-op, not an error: the caller declined to pick
// a location.
func WriteDocument(destination, content string) error {
	if destination == "" {
		return nil
	}
	if dir := filepath.Dir(destination); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(destination, []byte(content), 0o644)
}
