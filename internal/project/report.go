package project

import (
	"os"
	"path/filepath"
)

// SaveReport writes a rendered text report to the given path, creating
// parent directories as needed.
func SaveReport(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}
